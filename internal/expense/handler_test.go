package expense_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/Crashito0982/PruebaTecnica/internal/auth"
	categoryDatamodel "github.com/Crashito0982/PruebaTecnica/internal/core/datamodel/category"
	"github.com/Crashito0982/PruebaTecnica/internal/expense"
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

var _ = Describe("Expense Handler", func() {
	var (
		mockRepo       *MockRepository
		mockCategories *MockCategoryReader
		router         *chi.Mux
		userID         uuid.UUID
		categoryID     uuid.UUID
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		mockCategories = NewMockCategoryReader()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := expense.NewService(mockRepo, mockCategories, logger)
		handler := expense.NewHandler(transport.NewBaseHandler(logger), service)
		userID = uuid.New()
		categoryID = uuid.New()
		mockCategories.categories[categoryID] = &categoryDatamodel.Category{
			ID: categoryID, Nombre: "Comida", UsuarioID: userID,
		}

		router = chi.NewRouter()
		router.Get("/expenses", handler.GetExpenses)
		router.Post("/expenses", handler.CreateExpense)
		router.Put("/expenses/{id}", handler.UpdateExpense)
		router.Delete("/expenses/{id}", handler.DeleteExpense)
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

	Describe("GET /expenses", func() {
		It("responds with the paged envelope using the defaults", func() {
			rec := doRequest(http.MethodGet, "/expenses", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var result expense.PagedResult
			Expect(json.Unmarshal(rec.Body.Bytes(), &result)).To(Succeed())
			Expect(result.Page).To(Equal(1))
			Expect(result.PageSize).To(Equal(10))
			Expect(result.Items).NotTo(BeNil())
		})

		It("responds 400 when page is not a number", func() {
			rec := doRequest(http.MethodGet, "/expenses?page=abc", "")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeProblem(rec).Detail).To(Equal("page debe ser >= 1."))
		})

		It("responds 400 when pageSize is not a number", func() {
			rec := doRequest(http.MethodGet, "/expenses?pageSize=much", "")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeProblem(rec).Detail).To(Equal("pageSize debe ser >= 1."))
		})

		It("responds 400 when pageSize exceeds the maximum", func() {
			rec := doRequest(http.MethodGet, "/expenses?pageSize=101", "")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeProblem(rec).Detail).To(Equal("pageSize no puede ser mayor a 100."))
		})

		It("responds 400 when categoryId is not a UUID", func() {
			rec := doRequest(http.MethodGet, "/expenses?categoryId=nope", "")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeProblem(rec).Detail).To(Equal("categoryId debe ser un GUID válido."))
		})

		It("responds 400 for an unknown sortBy", func() {
			rec := doRequest(http.MethodGet, "/expenses?sortBy=descripcion", "")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeProblem(rec).Detail).To(Equal("sortBy debe ser 'monto' o 'fecha'."))
		})

		It("passes the parsed query through to the repository", func() {
			rec := doRequest(http.MethodGet, "/expenses?page=2&pageSize=5&sortBy=monto&sortOrder=asc&categoryId="+categoryID.String(), "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(mockRepo.lastFilter.Offset).To(Equal(5))
			Expect(mockRepo.lastFilter.Limit).To(Equal(5))
			Expect(mockRepo.lastFilter.SortBy).To(Equal(expense.SortByMonto))
			Expect(*mockRepo.lastFilter.CategoriaID).To(Equal(categoryID))
		})
	})

	Describe("POST /expenses", func() {
		It("responds 201 with a Location header", func() {
			rec := doRequest(http.MethodPost, "/expenses",
				`{"monto":1500.50,"fecha":"2024-06-01","categoriaId":"`+categoryID.String()+`"}`)
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var created expense.ExpenseDTO
			Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
			Expect(rec.Header().Get("Location")).To(Equal("/expenses/" + created.ID.String()))
			Expect(created.Monto).To(Equal(1500.50))
		})

		It("serializes fecha as a bare date", func() {
			rec := doRequest(http.MethodPost, "/expenses",
				`{"monto":100,"fecha":"2024-06-01","categoriaId":"`+categoryID.String()+`"}`)
			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(rec.Body.String()).To(ContainSubstring(`"fecha":"2024-06-01"`))
		})

		It("responds 400 for a non-positive monto", func() {
			rec := doRequest(http.MethodPost, "/expenses",
				`{"monto":0,"fecha":"2024-06-01","categoriaId":"`+categoryID.String()+`"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeProblem(rec).Detail).To(Equal("Monto debe ser mayor a 0."))
		})

		It("responds 404 for an unknown category", func() {
			rec := doRequest(http.MethodPost, "/expenses",
				`{"monto":100,"fecha":"2024-06-01","categoriaId":"`+uuid.NewString()+`"}`)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(decodeProblem(rec).Detail).To(Equal("Categoría no encontrada."))
		})

		It("responds 403 for another user's category", func() {
			foreignCat := uuid.New()
			mockCategories.categories[foreignCat] = &categoryDatamodel.Category{
				ID: foreignCat, Nombre: "Ajena", UsuarioID: uuid.New(),
			}

			rec := doRequest(http.MethodPost, "/expenses",
				`{"monto":100,"fecha":"2024-06-01","categoriaId":"`+foreignCat.String()+`"}`)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(decodeProblem(rec).Detail).To(Equal("No puedes usar categorías de otro usuario."))
		})
	})

	Describe("PUT /expenses/{id}", func() {
		It("responds 404 when the path id is not a UUID", func() {
			rec := doRequest(http.MethodPut, "/expenses/not-a-uuid",
				`{"monto":100,"fecha":"2024-06-01","categoriaId":"`+categoryID.String()+`"}`)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(decodeProblem(rec).Detail).To(Equal("Gasto no encontrado."))
		})
	})

	Describe("DELETE /expenses/{id}", func() {
		It("responds 204 on success", func() {
			created := doRequest(http.MethodPost, "/expenses",
				`{"monto":100,"fecha":"2024-06-01","categoriaId":"`+categoryID.String()+`"}`)
			var dto expense.ExpenseDTO
			Expect(json.Unmarshal(created.Body.Bytes(), &dto)).To(Succeed())

			rec := doRequest(http.MethodDelete, "/expenses/"+dto.ID.String(), "")
			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})

		It("responds 404 for an unknown id", func() {
			rec := doRequest(http.MethodDelete, "/expenses/"+uuid.NewString(), "")
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})
