// internal/platform/validator/validator.go
package validator

import (
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)

	// Reglas de nombres de bucket S3: 3-63 chars, minúsculas, dígitos, puntos y guiones,
	// empieza y termina en letra o dígito.
	bucketRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9.\-]{1,61}[a-z0-9]$`)
)

// Host validators

// IsDomain verifica si un string es un dominio válido (no una IP).
func IsDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}
	if !domainRegex.MatchString(domain) {
		return false
	}
	return net.ParseIP(domain) == nil
}

// IsStorageHost accepts a domain with an optional port, e.g. "s3.amazonaws.com"
// or "minio.internal:9000".
func IsStorageHost(host string) bool {
	if h, p, err := net.SplitHostPort(host); err == nil {
		return IsDomain(h) && IsPort(p)
	}
	return IsDomain(host)
}

// NormalizeHost lowercases and strips a trailing dot and any scheme prefix.
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimSuffix(host, "/")
	return strings.TrimSuffix(host, ".")
}

// IsPort valida que un puerto esté en el rango válido [1-65535].
func IsPort(portStr string) bool {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return false
	}
	return port >= 1 && port <= 65535
}

// URL validators

// IsProxyURL verifica que la URL tenga un scheme soportado por net/http y host.
func IsProxyURL(raw string) bool {
	if len(raw) == 0 {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "socks5":
		return parsed.Host != ""
	default:
		return false
	}
}

// Bucket validators

// IsBucketName reports whether name follows S3 bucket naming rules.
// Non-conforming names are still probed; this only feeds warnings.
func IsBucketName(name string) bool {
	if !bucketRegex.MatchString(name) {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	// No puede tener forma de IPv4
	return net.ParseIP(name) == nil
}
