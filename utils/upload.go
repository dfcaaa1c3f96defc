package utils

import (
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid"
)

const uploadNameAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateUploadName 生成上传文件存储名，毫秒时间戳加随机后缀保证唯一
func GenerateUploadName(ext string) (string, error) {
	suffix, err := gonanoid.Generate(uploadNameAlphabet, 8)
	if err != nil {
		return "", err
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext), nil
}

// ValidateUploadName 校验文件名不含路径成分，防止目录穿越
func ValidateUploadName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, "/\\") && name != "." && name != ".."
}
