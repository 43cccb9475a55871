package openai

import (
	"net/url"
	"strings"
)

// endpointSuffixes 是用户常误填到 base_url 里的具体接口路径。
var endpointSuffixes = []string{"/chat/completions", "/completions", "/responses"}

// normalizeBaseURL 把用户配置的地址规整为以 /v1 结尾的 API 根路径。
// 无法解析的地址原样返回，由 SDK 在请求时报错。
func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	path := strings.TrimRight(parsed.Path, "/")
	for _, suffix := range endpointSuffixes {
		if strings.HasSuffix(path, suffix) {
			path = strings.TrimRight(strings.TrimSuffix(path, suffix), "/")
			break
		}
	}
	for strings.HasSuffix(path, "/v1/v1") {
		path = strings.TrimSuffix(path, "/v1")
	}
	if !strings.HasSuffix(path, "/v1") {
		path += "/v1"
	}
	parsed.Path = path
	return parsed.String()
}
