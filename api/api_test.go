package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/pm-platform/registry/api"
	"github.com/pm-platform/registry/auth"
	authTest "github.com/pm-platform/registry/auth/test"
	"github.com/pm-platform/registry/patients"
	patientsTest "github.com/pm-platform/registry/patients/test"
)

var _ = Describe("Api", func() {
	var ctrl *gomock.Controller
	var patientsService *patientsTest.MockService
	var authenticator *authTest.MockAuthenticator
	var server *echo.Echo

	claims := &auth.Claims{
		Role: "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "ann@x.com",
		},
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		patientsService = patientsTest.NewMockService(ctrl)
		authenticator = authTest.NewMockAuthenticator(ctrl)

		handler := api.NewHandler(api.Params{
			Patients:      patientsService,
			Authenticator: authenticator,
		})

		var err error
		server, err = api.NewServer(handler, api.NewHealthCheck(), authenticator, zap.NewNop())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	authorized := func(req *http.Request) *http.Request {
		req.Header.Set("Authorization", "Bearer token")
		authenticator.EXPECT().Validate("token").Return(claims, nil)
		return req
	}

	Describe("Login", func() {
		It("returns a token for valid credentials", func() {
			authenticator.EXPECT().
				Authenticate(gomock.Any(), "ann@x.com", "correctpw").
				Return("signed-token", nil)

			body := `{"email":"ann@x.com","password":"correctpw"}`
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			response := api.LoginResponseDto{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Token).To(Equal("signed-token"))
		})

		It("returns 401 for rejected credentials", func() {
			authenticator.EXPECT().
				Authenticate(gomock.Any(), "ann@x.com", "wrongpass").
				Return("", auth.ErrUnauthenticated)

			body := `{"email":"ann@x.com","password":"wrongpass"}`
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Patients", func() {
		It("rejects requests without a bearer token", func() {
			req := httptest.NewRequest(http.MethodGet, "/patients", nil)
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("creates a patient", func() {
			patient := patientsTest.RandomPatient()
			patientsService.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, p patients.Patient) (*patients.Patient, error) {
					p.Id = "7f8d9c6a-2b4e-4a1d-9c3f-5e6a7b8c9d0e"
					return &p, nil
				})

			body, err := json.Marshal(api.PatientRequestDto{
				Name:           patient.Name,
				Email:          patient.Email,
				Address:        patient.Address,
				DateOfBirth:    patient.DateOfBirth,
				RegisteredDate: patient.RegisteredDate,
			})
			Expect(err).ToNot(HaveOccurred())

			req := authorized(httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(string(body))))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))

			response := api.PatientResponseDto{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Id).ToNot(BeEmpty())
			Expect(response.Email).To(Equal(patient.Email))
		})

		It("maps an email conflict to 409", func() {
			patientsService.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(nil, patients.ErrEmailExists)

			req := authorized(httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(`{"email":"ann@x.com"}`)))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusConflict))
		})

		It("maps an unknown id to 404 on update", func() {
			patientsService.EXPECT().
				Update(gomock.Any(), "missing", gomock.Any()).
				Return(nil, patients.ErrNotFound)

			req := authorized(httptest.NewRequest(http.MethodPut, "/patients/missing", strings.NewReader(`{"email":"ann@x.com"}`)))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("deletes a patient", func() {
			patientsService.EXPECT().
				Delete(gomock.Any(), "patient-1").
				Return(nil)

			req := authorized(httptest.NewRequest(http.MethodDelete, "/patients/patient-1", nil))
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})

		It("lists patients", func() {
			first := patientsTest.RandomPatient()
			first.Id = "id-1"
			patientsService.EXPECT().
				List(gomock.Any()).
				Return([]*patients.Patient{&first}, nil)

			req := authorized(httptest.NewRequest(http.MethodGet, "/patients", nil))
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var response []api.PatientResponseDto
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response).To(HaveLen(1))
			Expect(response[0].Id).To(Equal("id-1"))
		})
	})
})
