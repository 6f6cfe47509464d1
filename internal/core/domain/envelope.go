package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// TradeEnvelope is the wire unit exchanged with the gateway: an encrypted,
// encoded parameter set bound to the profile's secret key material by an
// uppercase hex SHA-256 digest.
//
// The signature must be recomputed and compared before CipherText is
// decrypted; decrypting unauthenticated input is forbidden.
type TradeEnvelope struct {
	CipherText string
	Signature  string
}

// Param is one key-value pair of a flat gateway parameter set.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered flat parameter set. Order is load-bearing: the
// gateway compares raw serialized strings, so nondeterministic field
// ordering silently breaks signature compatibility.
type Params []Param

// Add appends a key-value pair, preserving insertion order.
func (p *Params) Add(key, value string) {
	*p = append(*p, Param{Key: key, Value: value})
}

// Get returns the first value for key, or "" if absent.
func (p Params) Get(key string) string {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value
		}
	}
	return ""
}

// Encode serializes the parameters into the gateway's flat transport form:
// key=value pairs joined by "&", values percent-encoded.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(kv.Key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// ParseParams parses a flat key=value&... string back into an ordered
// parameter set.
func ParseParams(s string) (Params, error) {
	var out Params
	if s == "" {
		return out, nil
	}
	for _, pair := range strings.Split(s, "&") {
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("parse params: bad key %q: %w", key, err)
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("parse params: bad value for %q: %w", k, err)
		}
		out.Add(k, v)
	}
	return out, nil
}
