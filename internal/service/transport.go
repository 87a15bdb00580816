// internal/service/transport.go
package service

import (
	"net"
	"net/http"
	"time"
)

// newHTTPClient builds the client used for every service call. Timeout
// covers the whole request including the body; ingestion of large batches
// can take a while, so it comes from config. There is no retry layer.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
		},
	}
}
