package pkg

import "strings"

// invalidFilenameChars 檔名不允許的字元
const invalidFilenameChars = `<>:"/\|?*`

// maxFilenameLen 檔名長度上限
const maxFilenameLen = 100

// SanitizeFilename 過濾檔名中的非法字元並限制長度
func SanitizeFilename(filename string) string {
	sanitized := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidFilenameChars, r) {
			return '_'
		}
		return r
	}, filename)

	runes := []rune(sanitized)
	if len(runes) > maxFilenameLen {
		return string(runes[:maxFilenameLen])
	}
	return sanitized
}
