package programs

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/reusee/turing/tmconfigs"
	"golang.org/x/net/proxy"
)

type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

type DialerFunc func(context.Context, string, string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network string, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

func (d DialerFunc) Dial(network string, addr string) (net.Conn, error) {
	return d(context.Background(), network, addr)
}

type HTTPClient = *http.Client

// HTTPClient fetches remote programs, through the configured proxy unless the
// host is local.
func (Module) HTTPClient(
	proxyAddr tmconfigs.ProxyAddr,
) HTTPClient {
	direct := &net.Dialer{
		Timeout: 10 * time.Second,
	}
	getProxyDialer := sync.OnceValues(func() (Dialer, error) {
		if proxyAddr == "" {
			return direct, nil
		}
		u, err := url.Parse(string(proxyAddr))
		if err != nil {
			return nil, err
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		d, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		if cd, ok := d.(Dialer); ok {
			return cd, nil
		}
		return DialerFunc(func(_ context.Context, network, addr string) (net.Conn, error) {
			return d.Dial(network, addr)
		}), nil
	})

	dialer := DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		if isLocalAddr(ctx, addr) {
			return direct.DialContext(ctx, network, addr)
		}
		proxyDialer, err := getProxyDialer()
		if err != nil {
			return nil, err
		}
		return proxyDialer.DialContext(ctx, network, addr)
	})

	return &http.Client{
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
		},
		Timeout: time.Minute,
	}
}

// isLocalAddr reports whether addr resolves to a loopback or private address.
// Unresolvable hosts are not local, so they go through the proxy.
func isLocalAddr(ctx context.Context, addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return false
	}
	for _, addr := range addrs {
		if addr.IP.IsLoopback() || addr.IP.IsPrivate() {
			return true
		}
	}
	return false
}
