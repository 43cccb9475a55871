package agent

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
)

var defaultPorts = map[string]string{"http": "80", "https": "443"}

// CheckReachable 拨号 baseURL 的主机端口。空 URL 表示使用 SDK 默认端点，直接通过。
func CheckReachable(ctx context.Context, baseURL string) error {
	addr, err := dialAddr(baseURL)
	if err != nil || addr == "" {
		return err
	}
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("cannot connect to %s: %w", addr, err)
	}
	return conn.Close()
}

// dialAddr 把 base URL 转成 host:port。
func dialAddr(baseURL string) (string, error) {
	raw := strings.TrimSpace(baseURL)
	if raw == "" {
		return "", nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base_url %q: %w", raw, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("invalid base_url %q: missing host", raw)
	}
	port := u.Port()
	if port == "" {
		var ok bool
		if port, ok = defaultPorts[strings.ToLower(u.Scheme)]; !ok {
			return "", fmt.Errorf("unsupported base_url scheme %q", u.Scheme)
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}
