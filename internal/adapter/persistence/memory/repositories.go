package memory

import (
	"context"
	"sort"
	"time"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"
)

type TravelPricingRuleRepository struct{ s *Store }

var _ interfaces.ITravelPricingRuleRepository = (*TravelPricingRuleRepository)(nil)

func NewTravelPricingRuleRepository(s *Store) *TravelPricingRuleRepository {
	return &TravelPricingRuleRepository{s: s}
}

func (r *TravelPricingRuleRepository) Create(_ context.Context, rule entities.TravelPricingRule) (entities.TravelPricingRule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rules[rule.ID]; ok {
		return entities.TravelPricingRule{}, interfaces.ErrConditionFailed
	}
	r.s.rules[rule.ID] = rule
	return rule, nil
}

func (r *TravelPricingRuleRepository) List(_ context.Context) ([]entities.TravelPricingRule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rules := make([]entities.TravelPricingRule, 0, len(r.s.rules))
	for _, rule := range r.s.rules {
		rules = append(rules, rule)
	}
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Order != rules[j].Order {
			return rules[i].Order < rules[j].Order
		}
		return rules[i].CreatedAt.Before(rules[j].CreatedAt)
	})
	return rules, nil
}

func (r *TravelPricingRuleRepository) GetByID(_ context.Context, id string) (entities.TravelPricingRule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.rules[id], nil
}

func (r *TravelPricingRuleRepository) Update(_ context.Context, rule entities.TravelPricingRule) (entities.TravelPricingRule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rules[rule.ID]; !ok {
		return entities.TravelPricingRule{}, nil
	}
	r.s.rules[rule.ID] = rule
	return rule, nil
}

func (r *TravelPricingRuleRepository) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rules[id]; !ok {
		return false, nil
	}
	delete(r.s.rules, id)
	return true, nil
}

type SettingsRepository struct{ s *Store }

var _ interfaces.ISettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(s *Store) *SettingsRepository {
	return &SettingsRepository{s: s}
}

func (r *SettingsRepository) Get(_ context.Context) (entities.Settings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.settings, nil
}

func (r *SettingsRepository) Save(_ context.Context, settings entities.Settings) (entities.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.settings = settings
	return settings, nil
}

type BudgetRepository struct{ s *Store }

var _ interfaces.IBudgetRepository = (*BudgetRepository)(nil)

func NewBudgetRepository(s *Store) *BudgetRepository {
	return &BudgetRepository{s: s}
}

func (r *BudgetRepository) Create(_ context.Context, b entities.Budget) (entities.Budget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.budgets[b.ID]; ok {
		return entities.Budget{}, interfaces.ErrConditionFailed
	}
	r.s.budgets[b.ID] = cloneBudget(b)
	return b, nil
}

func (r *BudgetRepository) GetByID(_ context.Context, id string) (entities.Budget, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneBudget(r.s.budgets[id]), nil
}

func (r *BudgetRepository) List(_ context.Context) ([]entities.Budget, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	budgets := make([]entities.Budget, 0, len(r.s.budgets))
	for _, b := range r.s.budgets {
		budgets = append(budgets, cloneBudget(b))
	}
	sort.SliceStable(budgets, func(i, j int) bool { return budgets[i].Seq > budgets[j].Seq })
	return budgets, nil
}

func (r *BudgetRepository) UpdateStatus(_ context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.budgets[id]
	if !ok {
		return entities.Budget{}, nil
	}
	if b.IsConverted() {
		return entities.Budget{}, interfaces.ErrConditionFailed
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	r.s.budgets[id] = b
	return cloneBudget(b), nil
}

func (r *BudgetRepository) UpdateTravel(_ context.Context, in entities.Budget) (entities.Budget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.budgets[in.ID]
	if !ok {
		return entities.Budget{}, nil
	}
	if b.IsConverted() {
		return entities.Budget{}, interfaces.ErrConditionFailed
	}
	b.SelectedAddress = in.SelectedAddress
	b.TravelDistanceKm = in.TravelDistanceKm
	b.TravelPrice = in.TravelPrice
	b.TravelDescription = in.TravelDescription
	b.FinalValue = in.FinalValue
	b.UpdatedAt = time.Now().UTC()
	r.s.budgets[in.ID] = b
	return cloneBudget(b), nil
}

func (r *BudgetRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.budgets[id]
	if !ok {
		return nil
	}
	if b.JobID != "" {
		return interfaces.ErrConditionFailed
	}
	delete(r.s.budgets, id)
	return nil
}

// ConvertBudget checks and writes both the budget and the job while holding
// the store lock, so concurrent conversions produce exactly one job.
func (r *BudgetRepository) ConvertBudget(_ context.Context, job entities.Job, budgetID string) (entities.Budget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.budgets[budgetID]
	if !ok {
		return entities.Budget{}, interfaces.ErrNotFound
	}
	if b.IsConverted() {
		return entities.Budget{}, interfaces.ErrConditionFailed
	}
	if _, exists := r.s.jobs[job.ID]; exists {
		return entities.Budget{}, interfaces.ErrConditionFailed
	}
	b.Status = entities.BudgetStatusConvertido
	b.JobID = job.ID
	b.UpdatedAt = job.CreatedAt
	r.s.budgets[budgetID] = b
	r.s.jobs[job.ID] = cloneJob(job)
	return cloneBudget(b), nil
}

type JobRepository struct{ s *Store }

var _ interfaces.IJobRepository = (*JobRepository)(nil)

func NewJobRepository(s *Store) *JobRepository {
	return &JobRepository{s: s}
}

func (r *JobRepository) GetByID(_ context.Context, id string) (entities.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneJob(r.s.jobs[id]), nil
}

func (r *JobRepository) List(_ context.Context) ([]entities.Job, error) {
	return r.list(func(entities.Job) bool { return true }, func(a, b entities.Job) bool { return a.Seq > b.Seq }), nil
}

func (r *JobRepository) ListByTeamID(_ context.Context, teamID string) ([]entities.Job, error) {
	return r.list(
		func(j entities.Job) bool { return j.TeamID == teamID },
		func(a, b entities.Job) bool { return a.PlannedDate.Before(b.PlannedDate) },
	), nil
}

func (r *JobRepository) list(keep func(entities.Job) bool, less func(a, b entities.Job) bool) []entities.Job {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	jobs := make([]entities.Job, 0, len(r.s.jobs))
	for _, j := range r.s.jobs {
		if keep(j) {
			jobs = append(jobs, cloneJob(j))
		}
	}
	sort.SliceStable(jobs, func(i, j int) bool { return less(jobs[i], jobs[j]) })
	return jobs
}

func (r *JobRepository) Save(_ context.Context, job entities.Job, expected entities.JobStatus) (entities.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.jobs[job.ID]
	if !ok || current.Status != expected {
		return entities.Job{}, interfaces.ErrConditionFailed
	}
	r.s.jobs[job.ID] = cloneJob(job)
	return job, nil
}

type TeamRepository struct{ s *Store }

var _ interfaces.ITeamRepository = (*TeamRepository)(nil)

func NewTeamRepository(s *Store) *TeamRepository {
	return &TeamRepository{s: s}
}

func (r *TeamRepository) Create(_ context.Context, t entities.Team) (entities.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teams[t.ID]; ok {
		return entities.Team{}, interfaces.ErrConditionFailed
	}
	for _, existing := range r.s.teams {
		if existing.Name == t.Name {
			return entities.Team{}, interfaces.ErrConditionFailed
		}
	}
	r.s.teams[t.ID] = t
	return t, nil
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (entities.Team, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.teams[id], nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (entities.Team, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return entities.Team{}, nil
}

func (r *TeamRepository) List(_ context.Context) ([]entities.Team, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	teams := make([]entities.Team, 0, len(r.s.teams))
	for _, t := range r.s.teams {
		teams = append(teams, t)
	}
	sort.SliceStable(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

type ClientRepository struct{ s *Store }

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(s *Store) *ClientRepository {
	return &ClientRepository{s: s}
}

func (r *ClientRepository) Create(_ context.Context, c entities.Client) (entities.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[c.ID]; ok {
		return entities.Client{}, interfaces.ErrConditionFailed
	}
	r.s.clients[c.ID] = cloneClient(c)
	return c, nil
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (entities.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneClient(r.s.clients[id]), nil
}

func (r *ClientRepository) List(_ context.Context) ([]entities.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	clients := make([]entities.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		clients = append(clients, cloneClient(c))
	}
	sort.SliceStable(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients, nil
}

type SequenceRepository struct{ s *Store }

var _ interfaces.ISequenceRepository = (*SequenceRepository)(nil)

func NewSequenceRepository(s *Store) *SequenceRepository {
	return &SequenceRepository{s: s}
}

func (r *SequenceRepository) Next(_ context.Context, name string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.counters[name]++
	return r.s.counters[name], nil
}

type CashTransactionRepository struct{ s *Store }

var _ interfaces.ICashTransactionRepository = (*CashTransactionRepository)(nil)

func NewCashTransactionRepository(s *Store) *CashTransactionRepository {
	return &CashTransactionRepository{s: s}
}

func (r *CashTransactionRepository) Create(_ context.Context, tx entities.CashTransaction) (entities.CashTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cash[tx.ID]; ok {
		return entities.CashTransaction{}, interfaces.ErrConditionFailed
	}
	if tx.Type == entities.CashTransactionEntrada && tx.JobID != "" {
		if _, paid := r.s.entradas[tx.JobID]; paid {
			return entities.CashTransaction{}, interfaces.ErrConditionFailed
		}
		r.s.entradas[tx.JobID] = tx.ID
	}
	r.s.cash[tx.ID] = tx
	return tx, nil
}

func (r *CashTransactionRepository) List(_ context.Context) ([]entities.CashTransaction, error) {
	return r.list(""), nil
}

func (r *CashTransactionRepository) ListByJobID(_ context.Context, jobID string) ([]entities.CashTransaction, error) {
	return r.list(jobID), nil
}

func (r *CashTransactionRepository) list(jobID string) []entities.CashTransaction {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	txs := make([]entities.CashTransaction, 0)
	for _, tx := range r.s.cash {
		if jobID == "" || tx.JobID == jobID {
			txs = append(txs, tx)
		}
	}
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date) })
	return txs
}
