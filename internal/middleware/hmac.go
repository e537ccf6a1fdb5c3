package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pinecut/quote-service/internal/domain/dto"
)

const (
	// HeaderSignature carries the hex HMAC-SHA256 of "<timestamp>.<body>".
	HeaderSignature = "X-PC4Y-Signature"
	// HeaderTimestamp carries the Unix second the signature was computed at.
	HeaderTimestamp = "X-PC4Y-Timestamp"
)

// HMACAuth returns a middleware verifying request signatures. The client
// signs the raw body prefixed with its timestamp; requests with a missing,
// stale, or invalid signature are rejected. An empty secret disables the
// check entirely, which is the development default.
func HMACAuth(secret string, maxSkew time.Duration) gin.HandlerFunc {
	if secret == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	if maxSkew <= 0 {
		maxSkew = 5 * time.Minute
	}

	key := []byte(secret)

	return func(c *gin.Context) {
		signature := c.GetHeader(HeaderSignature)
		timestamp := c.GetHeader(HeaderTimestamp)
		if signature == "" || timestamp == "" {
			abortUnauthorized(c, "missing request signature")
			return
		}

		ts, err := strconv.ParseInt(timestamp, 10, 64)
		if err != nil {
			abortUnauthorized(c, "invalid signature timestamp")
			return
		}
		skew := time.Since(time.Unix(ts, 0))
		if skew < -maxSkew || skew > maxSkew {
			abortUnauthorized(c, "signature timestamp outside accepted window")
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abortUnauthorized(c, "unable to read request body")
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		mac := hmac.New(sha256.New, key)
		mac.Write([]byte(timestamp))
		mac.Write([]byte("."))
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(expected), []byte(signature)) {
			abortUnauthorized(c, "invalid request signature")
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	requestID := GetRequestID(c)
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(requestID)
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
