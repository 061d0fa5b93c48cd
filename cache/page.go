package cache

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type cachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// PageMiddleware serves GET responses from the store, keyed by the page query
// parameter. Entries live for exactly ttl: writes elsewhere do NOT clear
// them, so a deleted post may stay visible until the entry expires.
func PageMiddleware(store Store, ttl time.Duration, keyPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := keyPrefix + ":page=" + c.Query("page")
		if raw, ok := store.Get(c.Request.Context(), key); ok {
			var page cachedPage
			if json.Unmarshal(raw, &page) == nil {
				c.Data(page.Status, page.ContentType, page.Body)
				c.Abort()
				return
			}
		}
		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		if writer.Status() != http.StatusOK {
			return
		}
		raw, err := json.Marshal(cachedPage{
			Status:      writer.Status(),
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		})
		if err == nil {
			store.Set(c.Request.Context(), key, raw, ttl)
		}
	}
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
