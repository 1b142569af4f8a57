package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFrontmatter(t *testing.T) {
	input := `---
title: Goroutines
description: Lightweight threads.
order: 3
tags:
  - go
  - concurrency
---

Body starts here.
`
	result, err := ExtractFrontmatter(input)
	require.NoError(t, err)

	assert.True(t, result.HasYAML)
	assert.Equal(t, "Goroutines", result.Config.Title)
	assert.Equal(t, "Lightweight threads.", result.Config.Description)
	assert.Equal(t, 3, result.Config.Order)
	assert.Equal(t, []string{"go", "concurrency"}, result.Config.Tags)
	assert.Equal(t, "Body starts here.\n", result.Body)
}

func TestExtractFrontmatterWithoutFence(t *testing.T) {
	input := "Just a plain note.\n"

	result, err := ExtractFrontmatter(input)
	require.NoError(t, err)

	assert.False(t, result.HasYAML)
	assert.Equal(t, input, result.Body)
	assert.Empty(t, result.Config.Title)
}

func TestExtractFrontmatterUnknownField(t *testing.T) {
	input := `---
title: Bad
author: someone
---
body
`
	_, err := ExtractFrontmatter(input)
	require.Error(t, err)

	var unknownErr *UnknownFieldError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "author", unknownErr.Field)
	assert.Contains(t, err.Error(), `use "meta" for custom fields`)
}

func TestExtractFrontmatterMetaExtension(t *testing.T) {
	input := `---
title: Extended
meta:
  difficulty: advanced
---
body
`
	result, err := ExtractFrontmatter(input)
	require.NoError(t, err)
	assert.Equal(t, "advanced", result.Config.Meta["difficulty"])
}

func TestExtractFrontmatterInvalidYAML(t *testing.T) {
	input := `---
title: [unclosed
---
body
`
	_, err := ExtractFrontmatter(input)
	require.Error(t, err)

	var parseErr *FrontmatterParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Message, "invalid YAML")
}

func TestErrorFileAttachment(t *testing.T) {
	err := &UnknownFieldError{Field: "author"}
	setErrorFile(err, "content/go/x.md")
	assert.Contains(t, err.Error(), "content/go/x.md")

	perr := &FrontmatterParseError{Message: "broken"}
	setErrorFile(perr, "content/go/y.md")
	assert.Equal(t, "content/go/y.md: broken", perr.Error())
}
