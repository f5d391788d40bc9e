package util

import (
	"strconv"
	"strings"
)

// NormalizeTags 去重并剔除空白标签，保持输入顺序
func NormalizeTags(raw []string) []string {
	tagSet := make(map[string]struct{})
	var tags []string

	for _, t := range raw {
		tag := strings.TrimSpace(t)
		if tag == "" {
			continue
		}
		if _, exists := tagSet[tag]; !exists {
			tagSet[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	return tags
}

// StrSliceToUInt64Slice 字符串切片转 uint64 切片
func StrSliceToUInt64Slice(in []string) ([]uint64, error) {
	out := make([]uint64, 0, len(in))
	for _, s := range in {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// PtrStr 用于将 string 转换为 *string
func PtrStr(s string) *string {
	return &s
}
