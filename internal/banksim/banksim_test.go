package banksim

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Simulate(t *testing.T) {
	t.Run("sends credentials and parses the result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v1/simulations" {
				t.Errorf("Unexpected path %s", r.URL.Path)
			}
			user, secret, ok := r.BasicAuth()
			if !ok || user != "portal-user" || secret != "portal-secret" {
				t.Errorf("Expected basic auth credentials, got %s/%s", user, secret)
			}

			var req SimulationRequest
			//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
			json.NewDecoder(r.Body).Decode(&req)
			if req.GrossIncome != 12000 {
				t.Errorf("Expected gross income 12000, got %v", req.GrossIncome)
			}

			//nolint:errcheck // Test response
			json.NewEncoder(w).Encode(Response{
				Result: &SimulationResult{
					SimulatedInstallment: 2350.75,
					GrossIncome:          12000,
					BankFinancing:        180000,
					TermMonths:           360,
				},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL)
		result, err := client.Simulate(context.Background(), "portal-user", "portal-secret", SimulationRequest{
			BuyerDocument:    "12345678900",
			GrossIncome:      12000,
			PropertyValue:    250000,
			ParticipantCount: 1,
		})
		if err != nil {
			t.Fatalf("Simulate failed: %v", err)
		}
		if result.SimulatedInstallment != 2350.75 {
			t.Errorf("Expected installment 2350.75, got %v", result.SimulatedInstallment)
		}
		if result.BankFinancing != 180000 {
			t.Errorf("Expected financing 180000, got %v", result.BankFinancing)
		}
	})

	t.Run("portal-level errors surface", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			msg := "income below minimum"
			//nolint:errcheck // Test response
			json.NewEncoder(w).Encode(Response{Error: &msg})
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.Simulate(context.Background(), "u", "s", SimulationRequest{})
		if err == nil || !strings.Contains(err.Error(), "income below minimum") {
			t.Errorf("Expected portal error, got %v", err)
		}
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.Simulate(context.Background(), "u", "s", SimulationRequest{})
		if err == nil {
			t.Error("Expected error on 502 response")
		}
	})
}
