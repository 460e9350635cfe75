package infographic

import "strings"

const structuringHead = `
1. Analyze the following content and identify 4-6 main points or themes:
<content>
`

const structuringTail = `
</content>

2. For each main point:
   a) Summarize the core idea in 2-3 sentences.
   b) List 2-3 related sub-concepts or details.
   c) Where possible, give 1-2 real-world cases or examples.
   d) Include 1-2 related technical terms or key concepts.
   e) Suggest a short quote, statistic, or tip related to the point.

3. For each point, suggest a visual element of 200x150 pixels (chart, diagram, icon, etc.).
   Pick the visualization method that suits the topic.

4. Arrange the points in a logical order and suggest a fitting icon or symbol for each point.

5. Use <thinking> tags to explain your structuring process and why you chose each visualization.

6. Provide the final structure as a single JSON object, shaped like
   {"title": "...", "points": [{"title": "...", "summary": "...", "subpoints": [], "examples": [],
   "terms": [], "highlight": "...", "visual": "...", "icon": "..."}]}.
   This JSON will be used to generate a complex, information-rich single-page HTML slide.

The goal is a comprehensive and visually engaging slide structure based on the given content.
Adjust to the complexity and depth of the content.
`

const renderingHead = `
1. Generate an HTML slide from the following JSON structure:
<json>
`

const renderingTail = `
</json>

2. Write the HTML following these specifications:
   - Use Tailwind CSS for styling (include the Tailwind CSS CDN).
   - Design a fixed layout of 1200x900 pixels. Make it scrollable where necessary.
   - Apply the Airbnb color style.
   - Use Lucide icons where appropriate.
   - Include the suggested visual element (chart, diagram, icon, etc.) in each section.
   - Choose a layout and design complexity that matches the complexity of the content.

3. Content guidelines:
   - Clearly emphasize the main points.
   - Balance text and visual elements.
   - Use hierarchy to organize information where needed.
   - Consider the overall flow and readability of the slide.

4. Provide the final HTML code as one complete document inside a single ` + "```html" + ` code block.

The goal is an information-rich, visually engaging slide based on the given content.
Adjust to the nature and complexity of the content.
`

// StructuringPrompt embeds the source text unchanged inside the analysis instructions.
func StructuringPrompt(source string) string {
	var sb strings.Builder
	sb.Grow(len(structuringHead) + len(source) + len(structuringTail))
	sb.WriteString(structuringHead)
	sb.WriteString(source)
	sb.WriteString(structuringTail)
	return sb.String()
}

// RenderingPrompt embeds the extracted JSON unchanged inside the HTML instructions.
func RenderingPrompt(structureJSON string) string {
	var sb strings.Builder
	sb.Grow(len(renderingHead) + len(structureJSON) + len(renderingTail))
	sb.WriteString(renderingHead)
	sb.WriteString(structureJSON)
	sb.WriteString(renderingTail)
	return sb.String()
}
