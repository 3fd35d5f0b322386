package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

var AllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

// CORS answers browser preflight requests and stamps the allow-all headers on
// every response, including ones served without an Origin header.
func CORS(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       AllowedHeaders,
		OptionsSuccessStatus: http.StatusOK,
	})
	allowHeaders := strings.Join(AllowedHeaders, ", ")

	preflight := c.Handler(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stampCORS(w.Header(), allowHeaders)
		preflight.ServeHTTP(&corsWriter{ResponseWriter: w, allowHeaders: allowHeaders}, r)
	})
}

func stampCORS(h http.Header, allowHeaders string) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", allowHeaders)
}

// corsWriter re-applies the allow headers when the status is written, since
// rs/cors echoes the requested headers on preflight.
type corsWriter struct {
	http.ResponseWriter
	allowHeaders string
	wroteHeader  bool
}

func (w *corsWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		stampCORS(w.Header(), w.allowHeaders)
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *corsWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *corsWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
