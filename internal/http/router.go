package http

import (
	"net/http"

	"billsoft-backend/internal/handlers"
	"billsoft-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	clientHandler *handlers.ClientHandler,
	itemHandler *handlers.ItemHandler,
	invoiceHandler *handlers.InvoiceHandler,
	quotationHandler *handlers.QuotationHandler,
	paymentHandler *handlers.PaymentHandler,
	expenseHandler *handlers.ExpenseHandler,
	settingHandler *handlers.SettingHandler,
	razorpayHandler *handlers.RazorpayHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Liveness and metrics
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Razorpay webhook authenticates by signature, not JWT
	r.HandleFunc("/razorpay/webhook", razorpayHandler.Webhook).Methods("POST")

	// Protected API routes - Clients
	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.Use(authMiddleware.Authenticate)
	clientsAPI.HandleFunc("", clientHandler.ListClients).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.CreateClient).Methods("POST")
	clientsAPI.HandleFunc("/{id}", clientHandler.GetClient).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.UpdateClient).Methods("PUT")
	clientsAPI.HandleFunc("/{id}", clientHandler.DeleteClient).Methods("DELETE")

	// Protected API routes - Items and purchases
	itemsAPI := r.PathPrefix("/api/items").Subrouter()
	itemsAPI.Use(authMiddleware.Authenticate)
	itemsAPI.HandleFunc("", itemHandler.ListItems).Methods("GET")
	itemsAPI.HandleFunc("", itemHandler.CreateItem).Methods("POST")
	itemsAPI.HandleFunc("/purchases", itemHandler.ListPurchases).Methods("GET")
	itemsAPI.HandleFunc("/purchases", itemHandler.RecordPurchase).Methods("POST")
	itemsAPI.HandleFunc("/purchases/{id}", itemHandler.DeletePurchase).Methods("DELETE")
	itemsAPI.HandleFunc("/{id}", itemHandler.GetItem).Methods("GET")
	itemsAPI.HandleFunc("/{id}", itemHandler.UpdateItem).Methods("PUT")
	itemsAPI.HandleFunc("/{id}", itemHandler.DeleteItem).Methods("DELETE")

	// Protected API routes - Invoices
	invoicesAPI := r.PathPrefix("/api/invoices").Subrouter()
	invoicesAPI.Use(authMiddleware.Authenticate)
	invoicesAPI.HandleFunc("", invoiceHandler.ListInvoices).Methods("GET")
	invoicesAPI.HandleFunc("", invoiceHandler.CreateInvoice).Methods("POST")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.GetInvoice).Methods("GET")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.UpdateInvoice).Methods("PUT")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.DeleteInvoice).Methods("DELETE")
	invoicesAPI.HandleFunc("/{id}/pdf", invoiceHandler.DownloadPDF).Methods("GET")
	invoicesAPI.HandleFunc("/{id}/payment-link", razorpayHandler.CreatePaymentLink).Methods("POST")

	// Protected API routes - Quotations
	quotationsAPI := r.PathPrefix("/api/quotations").Subrouter()
	quotationsAPI.Use(authMiddleware.Authenticate)
	quotationsAPI.HandleFunc("", quotationHandler.ListQuotations).Methods("GET")
	quotationsAPI.HandleFunc("", quotationHandler.CreateQuotation).Methods("POST")
	quotationsAPI.HandleFunc("/{id}", quotationHandler.GetQuotation).Methods("GET")
	quotationsAPI.HandleFunc("/{id}", quotationHandler.UpdateQuotation).Methods("PUT")
	quotationsAPI.HandleFunc("/{id}", quotationHandler.DeleteQuotation).Methods("DELETE")
	quotationsAPI.HandleFunc("/{id}/pdf", quotationHandler.DownloadPDF).Methods("GET")

	// Protected API routes - Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.ListPayments).Methods("GET")
	paymentsAPI.HandleFunc("", paymentHandler.RecordPayment).Methods("POST")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.GetPayment).Methods("GET")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.UpdatePayment).Methods("PUT")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.DeletePayment).Methods("DELETE")

	// Protected API routes - Expenses
	expensesAPI := r.PathPrefix("/api/expenses").Subrouter()
	expensesAPI.Use(authMiddleware.Authenticate)
	expensesAPI.HandleFunc("", expenseHandler.ListExpenses).Methods("GET")
	expensesAPI.HandleFunc("", expenseHandler.CreateExpense).Methods("POST")
	expensesAPI.HandleFunc("/{id}", expenseHandler.GetExpense).Methods("GET")
	expensesAPI.HandleFunc("/{id}", expenseHandler.UpdateExpense).Methods("PUT")
	expensesAPI.HandleFunc("/{id}", expenseHandler.DeleteExpense).Methods("DELETE")

	// Protected API routes - Settings. The company profile and document
	// counters are shared state, so updates are admin only.
	r.Handle("/api/settings", authMiddleware.Authenticate(http.HandlerFunc(settingHandler.GetSettings))).Methods("GET")
	r.Handle("/api/settings", authMiddleware.RequireAdmin(http.HandlerFunc(settingHandler.UpdateSettings))).Methods("PUT")
	r.Handle("/api/settings/sequence/{kind}", authMiddleware.Authenticate(http.HandlerFunc(settingHandler.PeekSequence))).Methods("GET")

	return r
}
