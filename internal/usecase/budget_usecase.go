package usecase

import (
	"context"
	"errors"
	"fmt"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/domain/travel"
	"fundacoes_backoffice/internal/usecase/interfaces"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	budgetSequence = "budget"
	jobSequence    = "job"
)

var (
	ErrBudgetNotFound         = errors.New("budget not found")
	ErrInvalidBudgetID        = errors.New("invalid budget id")
	ErrBudgetAlreadyConverted = errors.New("budget already converted")
	ErrBudgetHasJob           = errors.New("budget has a job and cannot be deleted")
	ErrBudgetClientNotFound   = errors.New("budget client not found")
	ErrBudgetAddressRequired  = errors.New("budget has no address to quote travel")
	ErrTeamRequired           = errors.New("team is required")
	ErrPlannedDateRequired    = errors.New("planned date is required")
	ErrTeamNotFound           = errors.New("team not found")
)

// CreateBudgetInput is what staff fill in to price a budget.
type CreateBudgetInput struct {
	ClientID        string
	Services        []entities.ServiceItem
	DiscountPercent float64
	SelectedAddress string
	Notes           string
}

// ConvertBudgetInput selects the crew and schedule of the Job created from a
// budget. TeamID wins over Team (exact name) when both are sent.
type ConvertBudgetInput struct {
	TeamID      string
	Team        string
	PlannedDate time.Time
	Site        string
	Notes       string
}

// IBudgetUseCase exposes the budget (orçamento) workflow:
//   - POST /budgets => Create()
//   - PATCH /budgets/{id}/approve|reject => Approve() / Reject()
//   - POST /budgets/{id}/travel => RecalculateTravel()
//   - POST /budgets/{id}/convert => Convert()
type IBudgetUseCase interface {
	Create(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	Approve(ctx context.Context, id string) (entities.Budget, error)
	Reject(ctx context.Context, id string) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	RecalculateTravel(ctx context.Context, id string, address string) (entities.Budget, error)
	Convert(ctx context.Context, id string, in ConvertBudgetInput) (entities.Job, entities.Budget, error)
}

// BudgetUseCaseDeps groups the collaborators of BudgetUseCase. Events may be
// nil; Location defaults to UTC.
type BudgetUseCaseDeps struct {
	Budgets   interfaces.IBudgetRepository
	Clients   interfaces.IClientRepository
	Teams     interfaces.ITeamRepository
	Sequences interfaces.ISequenceRepository
	Distance  IDistanceUseCase
	Events    interfaces.IJobEventPublisher
	Location  *time.Location
	Logger    *zap.Logger
}

type BudgetUseCase struct {
	budgets   interfaces.IBudgetRepository
	clients   interfaces.IClientRepository
	teams     interfaces.ITeamRepository
	sequences interfaces.ISequenceRepository
	distance  IDistanceUseCase
	events    interfaces.IJobEventPublisher
	location  *time.Location
	logger    *zap.Logger
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(d BudgetUseCaseDeps) *BudgetUseCase {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	return &BudgetUseCase{
		budgets:   d.Budgets,
		clients:   d.Clients,
		teams:     d.Teams,
		sequences: d.Sequences,
		distance:  d.Distance,
		events:    d.Events,
		location:  loc,
		logger:    d.Logger.Named("budget"),
	}
}

func (u *BudgetUseCase) Create(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	if err := validateBudgetInput(in); err != nil {
		return entities.Budget{}, err
	}

	client, err := u.clients.GetByID(ctx, strings.TrimSpace(in.ClientID))
	if err != nil {
		return entities.Budget{}, err
	}
	if client.ID == "" {
		return entities.Budget{}, ErrBudgetClientNotFound
	}

	seq, err := u.sequences.Next(ctx, budgetSequence)
	if err != nil {
		return entities.Budget{}, err
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:              uuid.NewString(),
		Seq:             seq,
		ClientID:        client.ID,
		ClientName:      client.Name,
		Services:        priceServices(in.Services),
		DiscountPercent: in.DiscountPercent,
		Status:          entities.BudgetStatusPendente,
		SelectedAddress: strings.TrimSpace(in.SelectedAddress),
		Notes:           strings.TrimSpace(in.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// A failing quote does not block the budget; staff can retry through
	// RecalculateTravel once the address or settings are fixed.
	if b.SelectedAddress != "" && u.distance != nil {
		quote, qErr := u.distance.Calculate(ctx, b.SelectedAddress)
		if qErr != nil {
			u.logger.Warn("[budget][usecase] travel quote failed on create", zap.Int64("seq", seq), zap.Error(qErr))
		} else {
			applyTravelQuote(&b, quote)
		}
	}
	recalculateTotals(&b)

	created, err := u.budgets.Create(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	u.logger.Info("[budget][usecase] budget created",
		zap.String("budget_id", created.ID),
		zap.Int64("seq", created.Seq),
		zap.Float64("final_value", created.FinalValue),
	)
	return created, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.budgets.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	return u.budgets.List(ctx)
}

func (u *BudgetUseCase) Approve(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusAprovado)
}

func (u *BudgetUseCase) Reject(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusRejeitado)
}

func (u *BudgetUseCase) updateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if current.IsConverted() {
		return entities.Budget{}, ErrBudgetAlreadyConverted
	}

	updated, err := u.budgets.UpdateStatus(ctx, current.ID, status)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Budget{}, ErrBudgetAlreadyConverted
		}
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	u.logger.Info("[budget][usecase] status updated", zap.String("budget_id", updated.ID), zap.String("status", string(status)))
	return updated, nil
}

func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.JobID != "" {
		return ErrBudgetHasJob
	}
	if err := u.budgets.Delete(ctx, current.ID); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return ErrBudgetHasJob
		}
		return err
	}
	u.logger.Info("[budget][usecase] budget deleted", zap.String("budget_id", current.ID))
	return nil
}

// RecalculateTravel quotes the budget address again and stores the new travel
// snapshot. An explicit address replaces the selected one.
func (u *BudgetUseCase) RecalculateTravel(ctx context.Context, id string, address string) (entities.Budget, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if current.IsConverted() {
		return entities.Budget{}, ErrBudgetAlreadyConverted
	}

	if a := strings.TrimSpace(address); a != "" {
		current.SelectedAddress = a
	}
	if current.SelectedAddress == "" {
		return entities.Budget{}, ErrBudgetAddressRequired
	}

	quote, err := u.distance.Calculate(ctx, current.SelectedAddress)
	if err != nil {
		return entities.Budget{}, err
	}
	applyTravelQuote(&current, quote)
	recalculateTotals(&current)
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.budgets.UpdateTravel(ctx, current)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Budget{}, ErrBudgetAlreadyConverted
		}
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

// Convert creates the Job for a budget and marks the budget convertido in one
// conditional write. Of two concurrent conversions only one succeeds; the
// other gets ErrBudgetAlreadyConverted and writes nothing.
func (u *BudgetUseCase) Convert(ctx context.Context, id string, in ConvertBudgetInput) (entities.Job, entities.Budget, error) {
	ctx, span := tracer.Start(ctx, "BudgetUseCase.Convert")
	defer span.End()

	id = strings.TrimSpace(id)
	in.TeamID = strings.TrimSpace(in.TeamID)
	in.Team = strings.TrimSpace(in.Team)
	if id == "" {
		return entities.Job{}, entities.Budget{}, ErrInvalidBudgetID
	}
	if in.TeamID == "" && in.Team == "" {
		return entities.Job{}, entities.Budget{}, ErrTeamRequired
	}
	if in.PlannedDate.IsZero() {
		return entities.Job{}, entities.Budget{}, ErrPlannedDateRequired
	}
	span.SetAttributes(attribute.String("budget.id", id))
	u.logger.Info("[budget][usecase] convert start", zap.String("budget_id", id), zap.String("team_id", in.TeamID), zap.String("team", in.Team))

	var budget entities.Budget
	var team entities.Team
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := u.budgets.GetByID(gctx, id)
		budget = b
		return err
	})
	g.Go(func() error {
		t, err := u.resolveTeam(gctx, in)
		team = t
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return entities.Job{}, entities.Budget{}, err
	}

	if budget.ID == "" {
		return entities.Job{}, entities.Budget{}, ErrBudgetNotFound
	}
	if budget.IsConverted() {
		u.logger.Info("[budget][usecase] convert rejected, already converted", zap.String("budget_id", id), zap.String("job_id", budget.JobID))
		return entities.Job{}, entities.Budget{}, ErrBudgetAlreadyConverted
	}
	if team.ID == "" {
		return entities.Job{}, entities.Budget{}, ErrTeamNotFound
	}

	site := strings.TrimSpace(in.Site)
	if site == "" {
		site = budget.SelectedAddress
	}
	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		notes = budget.Notes
	}
	lat, lng := u.resolveSiteCoordinates(ctx, budget.ClientID, site)

	seq, err := u.sequences.Next(ctx, jobSequence)
	if err != nil {
		return entities.Job{}, entities.Budget{}, err
	}

	now := time.Now().UTC()
	job := entities.Job{
		ID:                uuid.NewString(),
		Seq:               seq,
		Title:             JobTitle(budget.ClientName, in.PlannedDate, seq, u.location),
		BudgetID:          budget.ID,
		ClientID:          budget.ClientID,
		ClientName:        budget.ClientName,
		Site:              site,
		SiteLatitude:      lat,
		SiteLongitude:     lng,
		Team:              team.Name,
		TeamID:            team.ID,
		Status:            entities.JobStatusPendente,
		PlannedDate:       in.PlannedDate.UTC(),
		Notes:             notes,
		Services:          append([]entities.ServiceItem(nil), budget.Services...),
		Value:             budget.Value,
		DiscountPercent:   budget.DiscountPercent,
		DiscountValue:     budget.DiscountValue,
		FinalValue:        budget.FinalValue,
		TravelDistanceKm:  budget.TravelDistanceKm,
		TravelPrice:       budget.TravelPrice,
		TravelDescription: budget.TravelDescription,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	updated, err := u.budgets.ConvertBudget(ctx, job, budget.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			u.logger.Info("[budget][usecase] convert budget removed", zap.String("budget_id", id))
			return entities.Job{}, entities.Budget{}, ErrBudgetNotFound
		}
		if errors.Is(err, interfaces.ErrConditionFailed) {
			u.logger.Info("[budget][usecase] convert lost race", zap.String("budget_id", id))
			return entities.Job{}, entities.Budget{}, ErrBudgetAlreadyConverted
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "convert failed")
		u.logger.Error("[budget][usecase] convert write failed", zap.String("budget_id", id), zap.Error(err))
		return entities.Job{}, entities.Budget{}, err
	}

	u.publish(ctx, entities.JobEvent{
		Type:      entities.JobEventCreated,
		JobID:     job.ID,
		BudgetID:  budget.ID,
		TeamID:    team.ID,
		Status:    job.Status,
		Timestamp: now,
	})
	u.logger.Info("[budget][usecase] convert success",
		zap.String("budget_id", id),
		zap.String("job_id", job.ID),
		zap.Int64("job_seq", job.Seq),
	)
	return job, updated, nil
}

func (u *BudgetUseCase) resolveTeam(ctx context.Context, in ConvertBudgetInput) (entities.Team, error) {
	if in.TeamID != "" {
		return u.teams.GetByID(ctx, in.TeamID)
	}
	return u.teams.GetByName(ctx, in.Team)
}

// resolveSiteCoordinates never fails the conversion: lookup errors are logged
// and the job is created without coordinates.
func (u *BudgetUseCase) resolveSiteCoordinates(ctx context.Context, clientID, site string) (*float64, *float64) {
	if clientID == "" {
		return nil, nil
	}
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		u.logger.Warn("[budget][usecase] client lookup failed, skipping coordinates", zap.String("client_id", clientID), zap.Error(err))
		return nil, nil
	}
	return MatchSiteCoordinates(client.Addresses, site)
}

// MatchSiteCoordinates looks for the saved address that contains the site (or
// is contained by it), ignoring case. Without a usable match the first address
// with coordinates is used.
func MatchSiteCoordinates(addresses []entities.ClientAddress, site string) (*float64, *float64) {
	needles := candidateForms(site)
	if len(needles) > 0 {
		for _, a := range addresses {
			if !a.HasCoordinates() {
				continue
			}
			if matchesAny(candidateForms(a.FullAddress()), needles) {
				return a.Latitude, a.Longitude
			}
		}
	}
	for _, a := range addresses {
		if a.HasCoordinates() {
			return a.Latitude, a.Longitude
		}
	}
	return nil, nil
}

func candidateForms(s string) []string {
	raw := strings.ToLower(strings.TrimSpace(s))
	if raw == "" {
		return nil
	}
	normalized := strings.ToLower(travel.NormalizeAddress(s))
	if normalized == raw {
		return []string{raw}
	}
	return []string{raw, normalized}
}

func matchesAny(haystacks, needles []string) bool {
	for _, h := range haystacks {
		for _, n := range needles {
			if strings.Contains(h, n) || strings.Contains(n, h) {
				return true
			}
		}
	}
	return false
}

// JobTitle renders "{client} - DD/MM/YYYY HH:mm - {seq:06d}" with the planned
// date shown in loc.
func JobTitle(clientName string, planned time.Time, seq int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return fmt.Sprintf("%s - %s - %06d", strings.TrimSpace(clientName), planned.In(loc).Format("02/01/2006 15:04"), seq)
}

func (u *BudgetUseCase) publish(ctx context.Context, ev entities.JobEvent) {
	if u.events == nil {
		return
	}
	if err := u.events.Publish(ctx, ev); err != nil {
		u.logger.Warn("[budget][usecase] job event publish failed", zap.String("job_id", ev.JobID), zap.Error(err))
	}
}

func validateBudgetInput(in CreateBudgetInput) error {
	iss := issues{}
	if strings.TrimSpace(in.ClientID) == "" {
		iss.add("clientId", "obrigatório")
	}
	if len(in.Services) == 0 {
		iss.add("services", "informe ao menos um serviço")
	}
	for i, s := range in.Services {
		field := fmt.Sprintf("services[%d]", i)
		switch {
		case strings.TrimSpace(s.Description) == "":
			iss.add(field+".description", "obrigatório")
		case s.Quantity <= 0:
			iss.add(field+".quantity", "deve ser maior que zero")
		case s.Price < 0:
			iss.add(field+".price", "não pode ser negativo")
		case s.Discount < 0 || s.Discount > s.Quantity*s.Price:
			iss.add(field+".discount", "fora do intervalo permitido")
		}
	}
	if in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		iss.add("discountPercent", "deve estar entre 0 e 100")
	}
	return iss.err()
}

func priceServices(in []entities.ServiceItem) []entities.ServiceItem {
	out := make([]entities.ServiceItem, len(in))
	for i, s := range in {
		s.Description = strings.TrimSpace(s.Description)
		s.FinalValue = roundCents(s.Quantity*s.Price - s.Discount)
		out[i] = s
	}
	return out
}

func applyTravelQuote(b *entities.Budget, q entities.DistanceQuote) {
	b.TravelDistanceKm = q.DistanceKm
	b.TravelPrice = q.TravelPrice
	b.TravelDescription = q.TravelDescription
}

// recalculateTotals keeps value = sum of services, the percentage discount
// applied over it and the travel fee added on top.
func recalculateTotals(b *entities.Budget) {
	var value float64
	for _, s := range b.Services {
		value += s.FinalValue
	}
	b.Value = roundCents(value)
	b.DiscountValue = roundCents(b.Value * b.DiscountPercent / 100)
	b.FinalValue = roundCents(b.Value - b.DiscountValue + b.TravelPrice)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
