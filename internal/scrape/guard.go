package scrape

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"
)

// ErrBlockedAddress is returned for pages on loopback, private, link-local
// or otherwise non-public addresses.
var ErrBlockedAddress = errors.New("address not allowed")

const maxRedirects = 5

var sharedAddressSpace = &net.IPNet{IP: net.IPv4(100, 64, 0, 0), Mask: net.CIDRMask(10, 32)}

// NewPublicClient returns an HTTP client that only connects to public
// addresses. The check runs on every dial, so redirects and DNS answers
// pointing inward are refused too.
func NewPublicClient() *http.Client {
	dialer := &net.Dialer{
		Timeout: 10 * time.Second,
		Control: func(_, address string, _ syscall.RawConn) error {
			host, _, err := net.SplitHostPort(address)
			if err != nil {
				return err
			}
			return checkIP(net.ParseIP(host))
		},
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	return &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			if !IsURL(req.URL.String()) {
				return fmt.Errorf("%w: redirect to %s", ErrBlockedAddress, req.URL.Scheme)
			}
			return checkHost(req.URL.Hostname())
		},
	}
}

// checkHost rejects hostnames that are known to be local without a DNS
// lookup. Other names are checked when dialed.
func checkHost(host string) error {
	h := strings.ToLower(strings.TrimSuffix(host, "."))
	if h == "localhost" || strings.HasSuffix(h, ".localhost") || strings.HasSuffix(h, ".internal") {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, host)
	}
	if ip := net.ParseIP(h); ip != nil {
		return checkIP(ip)
	}
	return nil
}

func checkIP(ip net.IP) error {
	if ip == nil || !isPublic(ip) {
		return fmt.Errorf("%w: %v", ErrBlockedAddress, ip)
	}
	return nil
}

func isPublic(ip net.IP) bool {
	return !(ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() ||
		ip.IsMulticast() ||
		sharedAddressSpace.Contains(ip))
}
