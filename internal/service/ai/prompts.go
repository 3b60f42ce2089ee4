package ai

import (
	"fmt"
	"strings"
)

const translateRules = `要求：
1. 只輸出翻譯後的文字，不要有任何其他解釋或說明
2. 保持原文的語氣和格式
3. 使用地道的表達方式
4. 如果原文中包含特殊符號或表情符號，在翻譯中保留它們`

// BuildSystemPrompt renders the translation instruction. With autoDetect the
// source language is never named, so input already in the target language is
// not forced through a wrong source.
func BuildSystemPrompt(sourceLangName, targetLangName string, autoDetect bool) (string, error) {
	targetLangName = strings.TrimSpace(targetLangName)
	if targetLangName == "" {
		return "", ErrEmptyTargetLanguage
	}

	var intro string
	sourceLangName = strings.TrimSpace(sourceLangName)
	if autoDetect || sourceLangName == "" {
		intro = fmt.Sprintf("你是一個翻譯助手。請將用戶的文字翻譯成%s。", targetLangName)
	} else {
		intro = fmt.Sprintf("你是一個翻譯助手。請將用戶的%s文字翻譯成%s。", sourceLangName, targetLangName)
	}
	return intro + "\n" + translateRules, nil
}
