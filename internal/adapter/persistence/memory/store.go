// Package memory keeps every repository in process memory. It backs
// STORAGE_TYPE=memory and mirrors the conditional writes of the DynamoDB
// repositories under a single lock.
package memory

import (
	"slices"
	"sync"

	"fundacoes_backoffice/internal/domain/entities"
)

type Store struct {
	mu sync.RWMutex

	rules    map[string]entities.TravelPricingRule
	settings entities.Settings
	budgets  map[string]entities.Budget
	jobs     map[string]entities.Job
	teams    map[string]entities.Team
	clients  map[string]entities.Client
	counters map[string]int64
	cash     map[string]entities.CashTransaction
	// job id -> transaction id of its entrada
	entradas map[string]string
}

func NewStore() *Store {
	return &Store{
		rules:    make(map[string]entities.TravelPricingRule),
		budgets:  make(map[string]entities.Budget),
		jobs:     make(map[string]entities.Job),
		teams:    make(map[string]entities.Team),
		clients:  make(map[string]entities.Client),
		counters: make(map[string]int64),
		cash:     make(map[string]entities.CashTransaction),
		entradas: make(map[string]string),
	}
}

func cloneBudget(b entities.Budget) entities.Budget {
	b.Services = slices.Clone(b.Services)
	return b
}

func cloneJob(j entities.Job) entities.Job {
	j.Services = slices.Clone(j.Services)
	return j
}

func cloneClient(c entities.Client) entities.Client {
	c.Addresses = slices.Clone(c.Addresses)
	return c
}
