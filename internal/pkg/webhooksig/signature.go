// Package webhooksig verifies the HMAC signature the payment processor puts
// on webhook deliveries. The header format is "t=<unix>,v1=<hex>", where v1
// is HMAC-SHA256 over "<unix>.<raw body>" with the endpoint's signing secret.
package webhooksig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMalformedHeader  = errors.New("malformed signature header")
	ErrNoValidSignature = errors.New("no valid signature found")
	ErrTimestampTooOld  = errors.New("signature timestamp outside tolerance")
)

type Verifier struct {
	secret    []byte
	tolerance time.Duration
}

func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	return &Verifier{secret: []byte(secret), tolerance: tolerance}
}

// Verify checks header against payload at time now. A tolerance of zero
// disables the timestamp check.
func (v *Verifier) Verify(payload []byte, header string, now time.Time) error {
	ts, sigs, err := parseHeader(header)
	if err != nil {
		return err
	}

	if v.tolerance > 0 {
		issued := time.Unix(ts, 0)
		if now.Sub(issued) > v.tolerance || issued.Sub(now) > v.tolerance {
			return ErrTimestampTooOld
		}
	}

	expected := v.sign(ts, payload)
	for _, sig := range sigs {
		if hmac.Equal(sig, expected) {
			return nil
		}
	}
	return ErrNoValidSignature
}

// Sign produces a header value for payload, used by tests and by the local
// processor stub.
func (v *Verifier) Sign(payload []byte, now time.Time) string {
	ts := now.Unix()
	return "t=" + strconv.FormatInt(ts, 10) + ",v1=" + hex.EncodeToString(v.sign(ts, payload))
}

func (v *Verifier) sign(ts int64, payload []byte) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return mac.Sum(nil)
}

func parseHeader(header string) (int64, [][]byte, error) {
	var (
		ts    int64
		tsSet bool
		sigs  [][]byte
	)
	for _, pair := range strings.Split(header, ",") {
		k, val, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return 0, nil, ErrMalformedHeader
		}
		switch k {
		case "t":
			parsed, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return 0, nil, ErrMalformedHeader
			}
			ts = parsed
			tsSet = true
		case "v1":
			sig, err := hex.DecodeString(val)
			if err != nil {
				continue // ignore undecodable candidates, another v1 may match
			}
			sigs = append(sigs, sig)
		}
	}
	if !tsSet || len(sigs) == 0 {
		return 0, nil, ErrMalformedHeader
	}
	return ts, sigs, nil
}
