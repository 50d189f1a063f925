package employee_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	employeeDatamodel "github.com/prakashpaswan/employee-portal/internal/core/datamodel/employee"
	"github.com/prakashpaswan/employee-portal/internal/employee"
	employeePostgres "github.com/prakashpaswan/employee-portal/internal/employee/postgres"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		db      *gorm.DB
		service *employee.Service
		handler *employee.Handler
		router  *chi.Mux
		slogger *slog.Logger
	)

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&employeeDatamodel.Employee{})
		Expect(err).NotTo(HaveOccurred())

		repo := employeePostgres.NewEmployeeRepository(db)
		service = employee.NewService(repo, slogger)
		handler = employee.NewHandler(service)

		router = chi.NewRouter()
		router.Route("/api/employees", func(er chi.Router) {
			er.Post("/", handler.CreateEmployee)
			er.Get("/", handler.ListEmployees)
			er.Get("/{id}", handler.GetEmployee)
			er.Put("/{id}", handler.UpdateEmployee)
			er.Delete("/{id}", handler.DeleteEmployee)
		})
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	createEmployee := func(body string) employee.Employee {
		req := httptest.NewRequest(http.MethodPost, "/api/employees", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var created employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		return created
	}

	It("should round-trip a created employee through GET by id", func() {
		created := createEmployee(`{"name":"Alice","position":"Engineer","salary":90000}`)
		Expect(created.ID).NotTo(BeEmpty())

		req := httptest.NewRequest(http.MethodGet, "/api/employees/"+created.ID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var fetched employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&fetched)).To(Succeed())
		Expect(fetched.ID).To(Equal(created.ID))
		Expect(*fetched.Name).To(Equal("Alice"))
		Expect(*fetched.Position).To(Equal("Engineer"))
		Expect(*fetched.Salary).To(Equal(float64(90000)))
	})

	It("should list as many employees as were created", func() {
		createEmployee(`{"name":"Alice"}`)
		createEmployee(`{"name":"Bob"}`)
		createEmployee(`{"name":"Carol"}`)

		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var listed []employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&listed)).To(Succeed())
		Expect(listed).To(HaveLen(3))
	})

	It("should answer 404, not 500, for a well-formed unknown identifier", func() {
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			req := httptest.NewRequest(method, "/api/employees/b1946ac9-2a98-4a0c-b1a2-0015c0f2335e", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))

			var resp map[string]string
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["message"]).To(Equal("Employee not found"))
		}
	})

	It("should clear fields omitted from a PUT payload", func() {
		created := createEmployee(`{"name":"Alice","position":"Engineer","salary":90000}`)

		req := httptest.NewRequest(http.MethodPut, "/api/employees/"+created.ID, bytes.NewBufferString(`{"salary":95000}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var updated employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&updated)).To(Succeed())
		Expect(updated.Name).To(BeNil())
		Expect(updated.Position).To(BeNil())
		Expect(*updated.Salary).To(Equal(float64(95000)))
	})

	It("should answer 404 when updating an unknown identifier", func() {
		req := httptest.NewRequest(http.MethodPut, "/api/employees/nope", bytes.NewBufferString(`{"name":"X"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should acknowledge a delete and actually remove the record", func() {
		created := createEmployee(`{"name":"Alice"}`)

		req := httptest.NewRequest(http.MethodDelete, "/api/employees/"+created.ID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var resp map[string]string
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp["message"]).To(Equal("Employee deleted successfully"))

		req = httptest.NewRequest(http.MethodGet, "/api/employees/"+created.ID, nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should reject an undecodable body", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/employees", bytes.NewBufferString(`{not json`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should surface a store failure as 500 with the raw message", func() {
		failing := employee.NewHandler(failingService{err: errors.New("store unreachable")})
		broken := chi.NewRouter()
		broken.Get("/api/employees", failing.ListEmployees)

		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		w := httptest.NewRecorder()
		broken.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))

		var resp map[string]string
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp["message"]).To(Equal("store unreachable"))
	})
})

// failingService fails every operation with a fixed error.
type failingService struct {
	err error
}

func (s failingService) CreateEmployee(employee.EmployeeDTO) (*employee.Employee, error) {
	return nil, s.err
}

func (s failingService) GetAllEmployees() ([]*employee.Employee, error) { return nil, s.err }

func (s failingService) GetEmployeeByID(string) (*employee.Employee, error) { return nil, s.err }

func (s failingService) UpdateEmployee(string, employee.EmployeeDTO) (*employee.Employee, error) {
	return nil, s.err
}

func (s failingService) DeleteEmployee(string) error { return s.err }
