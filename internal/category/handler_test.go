package category_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/Crashito0982/PruebaTecnica/internal/auth"
	"github.com/Crashito0982/PruebaTecnica/internal/category"
	"github.com/Crashito0982/PruebaTecnica/internal/transport"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type problemBody struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Type   string `json:"type"`
}

var _ = Describe("Category Handler", func() {
	var (
		mockRepo *MockRepository
		router   *chi.Mux
		userID   uuid.UUID
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := category.NewService(mockRepo, logger)
		handler := category.NewHandler(transport.NewBaseHandler(logger), service)
		userID = uuid.New()

		router = chi.NewRouter()
		router.Get("/categories", handler.GetCategories)
		router.Post("/categories", handler.CreateCategory)
		router.Put("/categories/{id}", handler.UpdateCategory)
		router.Delete("/categories/{id}", handler.DeleteCategory)
	})

	doRequest := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req = req.WithContext(auth.ContextWithUserID(context.Background(), userID))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decodeProblem := func(rec *httptest.ResponseRecorder) problemBody {
		var problem problemBody
		Expect(json.Unmarshal(rec.Body.Bytes(), &problem)).To(Succeed())
		return problem
	}

	Describe("POST /categories", func() {
		It("responds 201 with a Location header", func() {
			rec := doRequest(http.MethodPost, "/categories", `{"nombre":"Comida"}`)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var created category.CategoryDTO
			Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
			Expect(rec.Header().Get("Location")).To(Equal("/categories/" + created.ID.String()))
			Expect(created.Nombre).To(Equal("Comida"))
		})

		It("responds 400 with a problem body for a blank name", func() {
			rec := doRequest(http.MethodPost, "/categories", `{"nombre":"  "}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			problem := decodeProblem(rec)
			Expect(problem.Detail).To(Equal("nombre es requerido."))
			Expect(problem.Type).To(Equal("https://httpstatuses.com/400"))
		})

		It("responds 409 for a duplicate name", func() {
			Expect(doRequest(http.MethodPost, "/categories", `{"nombre":"Comida"}`).Code).To(Equal(http.StatusCreated))

			rec := doRequest(http.MethodPost, "/categories", `{"nombre":"Comida"}`)
			Expect(rec.Code).To(Equal(http.StatusConflict))
			Expect(decodeProblem(rec).Detail).To(Equal("Ya existe una categoría con ese nombre para este usuario."))
		})
	})

	Describe("GET /categories", func() {
		It("responds with a JSON array", func() {
			Expect(doRequest(http.MethodPost, "/categories", `{"nombre":"Comida"}`).Code).To(Equal(http.StatusCreated))

			rec := doRequest(http.MethodGet, "/categories", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var categories []category.CategoryDTO
			Expect(json.Unmarshal(rec.Body.Bytes(), &categories)).To(Succeed())
			Expect(categories).To(HaveLen(1))
		})
	})

	Describe("PUT /categories/{id}", func() {
		It("responds 204 on success", func() {
			created := doRequest(http.MethodPost, "/categories", `{"nombre":"Comida"}`)
			var dto category.CategoryDTO
			Expect(json.Unmarshal(created.Body.Bytes(), &dto)).To(Succeed())

			rec := doRequest(http.MethodPut, "/categories/"+dto.ID.String(), `{"nombre":"Alimentos"}`)
			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(rec.Body.Len()).To(BeZero())
		})

		It("responds 404 when the path id is not a UUID", func() {
			rec := doRequest(http.MethodPut, "/categories/not-a-uuid", `{"nombre":"X"}`)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(decodeProblem(rec).Detail).To(Equal("Categoría no encontrada."))
		})

		It("responds 404 for an unknown id", func() {
			rec := doRequest(http.MethodPut, "/categories/"+uuid.NewString(), `{"nombre":"X"}`)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /categories/{id}", func() {
		It("responds 409 when expenses reference the category", func() {
			created := doRequest(http.MethodPost, "/categories", `{"nombre":"Comida"}`)
			var dto category.CategoryDTO
			Expect(json.Unmarshal(created.Body.Bytes(), &dto)).To(Succeed())
			mockRepo.expenseCounts[dto.ID] = 2

			rec := doRequest(http.MethodDelete, "/categories/"+dto.ID.String(), "")
			Expect(rec.Code).To(Equal(http.StatusConflict))
			Expect(decodeProblem(rec).Detail).To(Equal("No se puede eliminar la categoría porque tiene gastos asociados."))
		})

		It("responds 204 on success", func() {
			created := doRequest(http.MethodPost, "/categories", `{"nombre":"Comida"}`)
			var dto category.CategoryDTO
			Expect(json.Unmarshal(created.Body.Bytes(), &dto)).To(Succeed())

			rec := doRequest(http.MethodDelete, "/categories/"+dto.ID.String(), "")
			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})
	})
})
