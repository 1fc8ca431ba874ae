package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Plantek/internal/auth"
	"Plantek/internal/calc/batch"
	"Plantek/internal/calc/cashflow"
	"Plantek/internal/calc/equipment"
	"Plantek/internal/calc/export"
	"Plantek/internal/calc/financing"
	"Plantek/internal/calc/metrics"
	"Plantek/internal/calc/model"
	"Plantek/internal/calc/report"
	"Plantek/internal/repo"
	"Plantek/internal/scenario"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(router *mux.Router, db *sql.DB) {
	store := repo.NewPostgresDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTKey: []byte(tokenKey), Repo: store}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	equipmentH := &equipment.Handler{}
	financingH := &financing.Handler{}
	cashflowH := &cashflow.Handler{}
	metricsH := &metrics.Handler{}
	modelH := &model.Handler{}
	batchH := &batch.Handler{}
	exportH := &export.Handler{}
	reportH := &report.Handler{}
	scenarioH := &scenario.Handler{Repo: store}

	secureApi.HandleFunc("/tools/equipment/boiler", equipmentH.Boiler).Methods("POST")
	secureApi.HandleFunc("/tools/equipment/pump", equipmentH.Pump).Methods("POST")
	secureApi.HandleFunc("/tools/equipment/turbine", equipmentH.SteamTurbine).Methods("POST")
	secureApi.HandleFunc("/tools/equipment/william", equipmentH.William).Methods("POST")
	secureApi.HandleFunc("/tools/equipment/batch", batchH.Equipment).Methods("POST")
	secureApi.HandleFunc("/tools/equipment/import", exportH.Equipment).Methods("POST")

	secureApi.HandleFunc("/tools/financing/loan", financingH.Loan).Methods("POST")
	secureApi.HandleFunc("/tools/financing/depreciation", financingH.Depreciation).Methods("POST")

	secureApi.HandleFunc("/tools/cashflow/assemble", cashflowH.Assemble).Methods("POST")
	secureApi.HandleFunc("/tools/metrics/calc", metricsH.Calc).Methods("POST")

	secureApi.HandleFunc("/tools/model/run", modelH.Run).Methods("POST")
	secureApi.HandleFunc("/tools/model/export", exportH.Results).Methods("POST")
	secureApi.HandleFunc("/tools/model/report", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/scenarios", scenarioH.Save).Methods("POST")
	secureApi.HandleFunc("/scenarios", scenarioH.List).Methods("GET")
	secureApi.HandleFunc("/scenarios/{id:[0-9]+}", scenarioH.Get).Methods("GET")
	secureApi.HandleFunc("/scenarios/{id:[0-9]+}", scenarioH.Delete).Methods("DELETE")
	secureApi.HandleFunc("/scenarios/{id:[0-9]+}/run", scenarioH.Run).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	db := auth.InitDB()
	defer db.Close()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":443"
	}

	router := mux.NewRouter()
	HandleList(router, db)
	handler := CORS(router)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	log.Println("Starting server on", addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
