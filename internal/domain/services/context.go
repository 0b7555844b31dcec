package services

import (
	"fmt"
	"strings"

	"promoreel/internal/domain/entities"
)

const (
	scriptExcerptLimit = 10000
	planExcerptLimit   = 1000
	planContextLimit   = 5000
)

// BuildFileContext concatenates each file's name and the head of its content
// for the script prompt. Files stay in caller-supplied order.
func BuildFileContext(files []entities.ProjectFile) string {
	var sb strings.Builder
	for _, f := range files {
		content := f.Content
		if len(content) > scriptExcerptLimit {
			content = content[:scriptExcerptLimit]
		}
		sb.WriteString(fmt.Sprintf("--- %s ---\n%s\n\n", f.Name, content))
	}
	return sb.String()
}

// CondenseFileContext builds the shorter code context used by the visual
// planner: each file truncated to 1,000 characters, the joined result capped
// at 5,000 characters.
func CondenseFileContext(files []entities.ProjectFile) string {
	var sb strings.Builder
	for _, f := range files {
		content := f.Content
		if len(content) > planExcerptLimit {
			content = content[:planExcerptLimit]
		}
		sb.WriteString(fmt.Sprintf("--- %s ---\n%s\n\n", f.Name, content))
	}

	context := sb.String()
	if len(context) > planContextLimit {
		context = context[:planContextLimit]
	}
	return context
}
