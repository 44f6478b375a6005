// Package middleware — HTTP-мидлвары REST-слоя: сквозные (request id,
// логирование, recover, таймаут) и охранные (аутентификация, роли).
package middleware

import "net/http"

// Middleware — стандартный net/http мидлвар.
type Middleware func(http.Handler) http.Handler

// Chain оборачивает h мидлварами так, что первый в списке
// оказывается внешним и отрабатывает раньше остальных.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	wrapped := h
	for i := len(mws) - 1; i >= 0; i-- {
		wrapped = mws[i](wrapped)
	}

	return wrapped
}

// statusWriter перехватывает статус ответа и число записанных байт
// для access-лога. Статус по умолчанию — 200, как в net/http.
type statusWriter struct {
	http.ResponseWriter

	status int
	count  int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.count += n
	return n, err
}

// Unwrap отдаёт исходный ResponseWriter для http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
