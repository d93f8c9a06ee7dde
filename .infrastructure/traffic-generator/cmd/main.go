package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	opsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_traffic_operations_total",
		Help: "Количество запросов генератора к crm",
	}, []string{"operation", "status"})

	opsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "crm_traffic_operation_duration_seconds",
		Help:    "Длительность запроса генератора в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"operation"})
)

var (
	cities    = []string{"Москва", "Казань", "Екатеринбург", "Новосибирск", "Тверь"}
	packaging = []string{"коробки", "паллеты", "мешки"}
)

type clientProfile struct {
	TelegramID int64  `json:"telegramId"`
	FirstName  string `json:"firstName"`
}

type requestCreate struct {
	Client        clientProfile `json:"client"`
	City          string        `json:"city"`
	DeliveryDate  string        `json:"deliveryDate"`
	PackagingType string        `json:"packagingType"`
	BoxCount      int           `json:"boxCount"`
	Weight        float64       `json:"weight"`
}

func getSchedule(client *http.Client, baseURL string) {
	observe(client, "schedule_get", func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, baseURL+"/schedule", nil)
	})
}

func postBotRequest(client *http.Client, baseURL string) {
	observe(client, "bot_requests_post", func() (*http.Request, error) {
		body, err := json.Marshal(requestCreate{
			Client: clientProfile{
				TelegramID: 100000 + rand.Int63n(50),
				FirstName:  "Нагрузка",
			},
			City:          cities[rand.Intn(len(cities))],
			DeliveryDate:  time.Now().AddDate(0, 0, 1+rand.Intn(14)).Format("2006-01-02"),
			PackagingType: packaging[rand.Intn(len(packaging))],
			BoxCount:      1 + rand.Intn(40),
			Weight:        float64(10 + rand.Intn(2000)),
		})
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequest(http.MethodPost, baseURL+"/bot/requests", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
}

func observe(client *http.Client, operation string, build func() (*http.Request, error)) {
	start := time.Now()
	defer func() {
		opsDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	req, err := build()
	if err != nil {
		opsCounter.WithLabelValues(operation, "build_error").Inc()
		return
	}

	resp, err := client.Do(req)
	if err != nil {
		opsCounter.WithLabelValues(operation, "transport_error").Inc()
		return
	}
	_ = resp.Body.Close()

	opsCounter.WithLabelValues(operation, fmt.Sprint(resp.StatusCode)).Inc()
}

func main() {
	baseURL := os.Getenv("CRM_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":2112", nil); err != nil { //nolint:gosec // dev tool
			log.Fatalf("metrics server: %v", err)
		}
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		getSchedule(client, baseURL)
		if rand.Intn(4) == 0 {
			postBotRequest(client, baseURL)
		}
		time.Sleep(time.Duration(200+rand.Intn(800)) * time.Millisecond)
	}
}
