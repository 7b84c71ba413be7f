package links

import "github.com/gaurav-prasanna/linkpipe/core/llm"

const fallbackTemplate = `You are a website scraper and you have just scraped the following content from a website.
Content: {{.content}}
{{if .user_prompt}}
The user is working on this task: {{.user_prompt}}
{{end}}
Assume relevance broadly, including any links that might be related or potentially useful
in relation to the task.

Sort the links in order of importance: the first one should be the most important one,
the last one the least important.

List only valid URLs and err on the side of inclusion if it is uncertain
whether the content at the link is directly relevant.

Output only a JSON list of relevant links in the format:
[
    "link1",
    "link2",
    "link3"
]
`

var fallbackPrompt = llm.MustPromptTemplate("relevant_links", fallbackTemplate, "content", "user_prompt")
