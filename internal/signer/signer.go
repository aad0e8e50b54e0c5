// Package signer computes the request signature expected by the remote sports data API.
//
// The remote contract is a plain MD5 over the canonical query string: parameters are
// sorted by key, joined as k=v pairs with '&', and hashed. The raw parameter values go
// into the hash, not their URL-encoded form.
package signer

import (
	"crypto/md5" // #nosec:G501 The remote API contract mandates MD5 signatures.
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Sign returns the lowercase hex MD5 signature of the canonical representation of params.
//
// Multi-valued keys contribute one k=v pair per value, in the order the values were added.
func Sign(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(params))
	for _, k := range keys {
		for _, v := range params[k] {
			pairs = append(pairs, k+"="+v)
		}
	}

	sum := md5.Sum([]byte(strings.Join(pairs, "&"))) // #nosec:G401
	return hex.EncodeToString(sum[:])
}
