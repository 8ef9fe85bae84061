package http

import "github.com/labstack/echo/v4"

type Routes struct {
	Health *Handler
	Loans  *LoanHandler
	Auth   *AuthHandler

	// RequireAuth guards mutating loan endpoints.
	RequireAuth echo.MiddlewareFunc
	// Idempotency runs after RequireAuth so keys can include the username.
	// Nil disables it.
	Idempotency echo.MiddlewareFunc
}

func (r Routes) Register(e *echo.Echo) {
	e.GET("/health", r.Health.Health)
	e.POST("/auth/login", r.Auth.Login)

	g := e.Group("/loans")
	g.GET("", r.Loans.GetLoans)
	g.GET("/:id", r.Loans.GetLoan)

	guarded := []echo.MiddlewareFunc{r.RequireAuth}
	if r.Idempotency != nil {
		guarded = append(guarded, r.Idempotency)
	}
	g.POST("", r.Loans.CreateLoan, guarded...)
	g.POST("/:id/payment", r.Loans.MakePayment, guarded...)
}
