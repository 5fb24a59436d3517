package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reedery/AirGrist/log"
)

type HTTPClientConfig struct {
	MaxIdleConns        int
	MaxConnsPerHost     int
	MaxIdleConnsPerHost int
	Timeout             time.Duration
}

func NewDefaultHTTPClientConfig() *HTTPClientConfig {
	return &HTTPClientConfig{
		MaxIdleConns:        10,
		MaxConnsPerHost:     10,
		MaxIdleConnsPerHost: 10,
		Timeout:             30 * time.Second,
	}
}

func NewHttpClient(config HTTPClientConfig) *http.Client {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = config.MaxIdleConns
	t.MaxConnsPerHost = config.MaxConnsPerHost
	t.MaxIdleConnsPerHost = config.MaxIdleConnsPerHost

	return &http.Client{
		Timeout:   config.Timeout,
		Transport: t,
	}
}

func NewDefaultHttpClient() *http.Client {
	config := NewDefaultHTTPClientConfig()
	return NewHttpClient(*config)
}

func HttpRequestWithToken(method string, url string, payload any, client *http.Client, token string) (int, []byte, error) {
	headers := make(map[string]string)
	headers["Authorization"] = fmt.Sprintf("Bearer %s", token)

	return HttpRequestWithHeader(method, url, payload, client, headers)
}

// HttpRequestWithHeader sends payload as JSON and reads the whole response.
// A non 2XX response is returned as *StatusError, a failure to exchange the
// request as *TransportError.
func HttpRequestWithHeader(method string, url string, payload any, client *http.Client, headers map[string]string) (int, []byte, error) {
	var body io.Reader
	if payload == nil {
		log.Logger().Debugf("send empty %s request to url %s", method, url)
	} else {
		jsonPostValue, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request payload: %w", err)
		}
		body = bytes.NewBuffer(jsonPostValue)
		log.Logger().Debugf("send %s request %s to url %s", method, string(jsonPostValue), url)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	for key := range headers {
		req.Header.Set(key, headers[key])
	}

	res, err := client.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Method: method, URL: url, Err: err}
	}

	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, nil, &TransportError{Method: method, URL: url, Err: err}
	}

	if res.StatusCode > 299 || res.StatusCode < 200 {
		return res.StatusCode, resBody, NewStatusError(res.StatusCode, resBody)
	}

	log.Logger().Debugf("got response %d from url %s", res.StatusCode, url)
	return res.StatusCode, resBody, nil
}
