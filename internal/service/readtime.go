package service

import "strings"

const wordsPerMinute = 200

// ReadTime estimates the reading time of content in whole minutes.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
