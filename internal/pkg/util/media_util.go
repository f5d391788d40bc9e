package util

import (
	"io"
	"net/http"
)

// GetSafeContentType 以文件头嗅探 MIME 类型，不信任客户端声明，
// 读取后回退到文件起始位置
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
