package transport_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/prakashpaswan/employee-portal/internal"
	"github.com/prakashpaswan/employee-portal/internal/transport"
)

var _ = Describe("BaseHandler", func() {
	var handler *transport.BaseHandler

	BeforeEach(func() {
		handler = transport.NewBaseHandler(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))
	})

	decodeMessage := func(w *httptest.ResponseRecorder) string {
		var resp map[string]string
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		return resp["message"]
	}

	Describe("HandleServiceError", func() {
		It("should use the status carried by an AppError", func() {
			w := httptest.NewRecorder()
			handler.HandleServiceError(w, internal.NewNotFoundError("Employee not found", internal.ErrCodeEmployeeNotFound))

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeMessage(w)).To(Equal("Employee not found"))
		})

		It("should answer 401 for an unauthorized AppError", func() {
			w := httptest.NewRecorder()
			handler.HandleServiceError(w, internal.NewUnauthorizedError("Unauthorized", internal.ErrCodeMissingToken))

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decodeMessage(w)).To(Equal("Unauthorized"))
		})

		It("should answer 400 for a validation AppError", func() {
			w := httptest.NewRecorder()
			handler.HandleServiceError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeMessage(w)).To(Equal("invalid request body"))
		})

		It("should surface an internal AppError's message, not its cause chain", func() {
			cause := errors.New("connection refused")
			w := httptest.NewRecorder()
			handler.HandleServiceError(w, internal.NewInternalError(cause.Error(), cause))

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decodeMessage(w)).To(Equal("connection refused"))
		})

		It("should fall back to 500 with the raw message for a plain error", func() {
			w := httptest.NewRecorder()
			handler.HandleServiceError(w, errors.New("store unreachable"))

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decodeMessage(w)).To(Equal("store unreachable"))
		})
	})

	Describe("ExtractTokenFromHeader", func() {
		newRequest := func(header string) *http.Request {
			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			return req
		}

		It("should extract a bearer token", func() {
			Expect(handler.ExtractTokenFromHeader(newRequest("Bearer abc.def.ghi"))).To(Equal("abc.def.ghi"))
		})

		It("should return empty for a missing header", func() {
			Expect(handler.ExtractTokenFromHeader(newRequest(""))).To(BeEmpty())
		})

		It("should return empty for a non-Bearer scheme", func() {
			Expect(handler.ExtractTokenFromHeader(newRequest("Basic abc123"))).To(BeEmpty())
		})
	})
})
