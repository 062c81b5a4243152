package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"
	mock_interfaces "fundacoes_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type stubDistance struct {
	quote   entities.DistanceQuote
	err     error
	calls   int
	address string
}

func (s *stubDistance) Calculate(_ context.Context, clientAddress string) (entities.DistanceQuote, error) {
	s.calls++
	s.address = clientAddress
	return s.quote, s.err
}

func (s *stubDistance) Geocode(context.Context, float64, float64) (entities.GeocodedAddress, error) {
	return entities.GeocodedAddress{}, nil
}

type budgetMocks struct {
	budgets   *mock_interfaces.MockIBudgetRepository
	clients   *mock_interfaces.MockIClientRepository
	teams     *mock_interfaces.MockITeamRepository
	sequences *mock_interfaces.MockISequenceRepository
	events    *mock_interfaces.MockIJobEventPublisher
	distance  *stubDistance
}

func newBudgetUseCase(t *testing.T) (*BudgetUseCase, budgetMocks) {
	ctrl := gomock.NewController(t)
	m := budgetMocks{
		budgets:   mock_interfaces.NewMockIBudgetRepository(ctrl),
		clients:   mock_interfaces.NewMockIClientRepository(ctrl),
		teams:     mock_interfaces.NewMockITeamRepository(ctrl),
		sequences: mock_interfaces.NewMockISequenceRepository(ctrl),
		events:    mock_interfaces.NewMockIJobEventPublisher(ctrl),
		distance:  &stubDistance{},
	}
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	uc := NewBudgetUseCase(BudgetUseCaseDeps{
		Budgets:   m.budgets,
		Clients:   m.clients,
		Teams:     m.teams,
		Sequences: m.sequences,
		Distance:  m.distance,
		Events:    m.events,
		Location:  loc,
		Logger:    zap.NewNop(),
	})
	return uc, m
}

func TestBudgetUseCase_Create(t *testing.T) {
	services := []entities.ServiceItem{
		{Description: "Estaca hélice", Quantity: 10, Price: 100, Discount: 50},
		{Description: "Mobilização", Quantity: 1, Price: 200},
	}

	t.Run("validation", func(t *testing.T) {
		uc, _ := newBudgetUseCase(t)
		_, err := uc.Create(context.Background(), CreateBudgetInput{DiscountPercent: 120})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		for _, f := range []string{"clientId", "services", "discountPercent"} {
			if vErr.Issues[f] == "" {
				t.Fatalf("expected issue for %s, got %+v", f, vErr.Issues)
			}
		}
	})

	t.Run("client not found", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), CreateBudgetInput{ClientID: "cli-1", Services: services})
		if !errors.Is(err, ErrBudgetClientNotFound) {
			t.Fatalf("expected ErrBudgetClientNotFound, got %v", err)
		}
	})

	t.Run("prices services and travel snapshot", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.distance.quote = entities.DistanceQuote{DistanceKm: 13, TravelPrice: 78, TravelDescription: "13km × R$ 3.00/km × 2 (ida e volta)"}
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Construtora Alfa"}, nil)
		m.sequences.EXPECT().Next(gomock.Any(), "budget").Return(int64(42), nil)
		m.budgets.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				return b, nil
			},
		)

		b, err := uc.Create(context.Background(), CreateBudgetInput{
			ClientID:        "cli-1",
			Services:        services,
			DiscountPercent: 10,
			SelectedAddress: "Rua das Flores, 50 | Aparecida de Goiânia",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Seq != 42 || b.ClientName != "Construtora Alfa" || b.Status != entities.BudgetStatusPendente {
			t.Fatalf("unexpected budget: %+v", b)
		}
		if b.Services[0].FinalValue != 950 || b.Value != 1150 || b.DiscountValue != 115 {
			t.Fatalf("unexpected totals: %+v", b)
		}
		if b.TravelPrice != 78 || b.FinalValue != 1113 {
			t.Fatalf("unexpected travel totals: %+v", b)
		}
		if m.distance.address != "Rua das Flores, 50 | Aparecida de Goiânia" {
			t.Fatalf("unexpected quoted address %q", m.distance.address)
		}
	})

	t.Run("travel quote failure does not block", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.distance.err = ErrNoRouteFound
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Alfa"}, nil)
		m.sequences.EXPECT().Next(gomock.Any(), "budget").Return(int64(1), nil)
		m.budgets.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil },
		)

		b, err := uc.Create(context.Background(), CreateBudgetInput{ClientID: "cli-1", Services: services, SelectedAddress: "Ilha"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.TravelPrice != 0 || b.FinalValue != 1150 {
			t.Fatalf("expected budget without travel, got %+v", b)
		}
	})
}

func TestBudgetUseCase_StatusFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *BudgetUseCase, ctx context.Context, id string) (entities.Budget, error)
		status entities.BudgetStatus
	}{
		{name: "approve", call: (*BudgetUseCase).Approve, status: entities.BudgetStatusAprovado},
		{name: "reject", call: (*BudgetUseCase).Reject, status: entities.BudgetStatusRejeitado},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc, _ := newBudgetUseCase(t)
			if _, err := tc.call(uc, context.Background(), ""); !errors.Is(err, ErrInvalidBudgetID) {
				t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			uc, m := newBudgetUseCase(t)
			m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)
			if _, err := tc.call(uc, context.Background(), "b-1"); !errors.Is(err, ErrBudgetNotFound) {
				t.Fatalf("expected ErrBudgetNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" converted", func(t *testing.T) {
			uc, m := newBudgetUseCase(t)
			m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusConvertido, JobID: "j-1"}, nil)
			if _, err := tc.call(uc, context.Background(), "b-1"); !errors.Is(err, ErrBudgetAlreadyConverted) {
				t.Fatalf("expected ErrBudgetAlreadyConverted, got %v", err)
			}
		})

		t.Run(tc.name+" lost against conversion", func(t *testing.T) {
			uc, m := newBudgetUseCase(t)
			m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusPendente}, nil)
			m.budgets.EXPECT().UpdateStatus(gomock.Any(), "b-1", tc.status).Return(entities.Budget{}, interfaces.ErrConditionFailed)
			if _, err := tc.call(uc, context.Background(), "b-1"); !errors.Is(err, ErrBudgetAlreadyConverted) {
				t.Fatalf("expected ErrBudgetAlreadyConverted, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			uc, m := newBudgetUseCase(t)
			m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusPendente}, nil)
			m.budgets.EXPECT().UpdateStatus(gomock.Any(), "b-1", tc.status).Return(entities.Budget{ID: "b-1", Status: tc.status}, nil)
			b, err := tc.call(uc, context.Background(), "b-1")
			if err != nil || b.Status != tc.status {
				t.Fatalf("unexpected result: %+v %v", b, err)
			}
		})
	}
}

func TestBudgetUseCase_Delete(t *testing.T) {
	t.Run("budget with job", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", JobID: "j-1"}, nil)
		if err := uc.Delete(context.Background(), "b-1"); !errors.Is(err, ErrBudgetHasJob) {
			t.Fatalf("expected ErrBudgetHasJob, got %v", err)
		}
	})

	t.Run("condition failed", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1"}, nil)
		m.budgets.EXPECT().Delete(gomock.Any(), "b-1").Return(interfaces.ErrConditionFailed)
		if err := uc.Delete(context.Background(), "b-1"); !errors.Is(err, ErrBudgetHasJob) {
			t.Fatalf("expected ErrBudgetHasJob, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1"}, nil)
		m.budgets.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)
		if err := uc.Delete(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_RecalculateTravel(t *testing.T) {
	t.Run("no address", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1"}, nil)
		if _, err := uc.RecalculateTravel(context.Background(), "b-1", ""); !errors.Is(err, ErrBudgetAddressRequired) {
			t.Fatalf("expected ErrBudgetAddressRequired, got %v", err)
		}
	})

	t.Run("distance error is returned", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.distance.err = ErrCompanyAddressNotConfigured
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", SelectedAddress: "Rua A"}, nil)
		if _, err := uc.RecalculateTravel(context.Background(), "b-1", ""); !errors.Is(err, ErrCompanyAddressNotConfigured) {
			t.Fatalf("expected ErrCompanyAddressNotConfigured, got %v", err)
		}
	})

	t.Run("stores new snapshot with explicit address", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.distance.quote = entities.DistanceQuote{DistanceKm: 80, TravelPrice: 500, TravelDescription: "Taxa fixa R$ 500.00 (padrão)"}
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{
			ID:              "b-1",
			Services:        []entities.ServiceItem{{Description: "x", Quantity: 1, Price: 1000, FinalValue: 1000}},
			SelectedAddress: "Rua A",
			TravelPrice:     78,
		}, nil)
		m.budgets.EXPECT().UpdateTravel(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.SelectedAddress != "Rua B" || b.TravelPrice != 500 || b.TravelDistanceKm != 80 || b.FinalValue != 1500 {
					t.Fatalf("unexpected update: %+v", b)
				}
				return b, nil
			},
		)

		if _, err := uc.RecalculateTravel(context.Background(), "b-1", " Rua B "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.distance.address != "Rua B" {
			t.Fatalf("expected explicit address to be quoted, got %q", m.distance.address)
		}
	})
}

func TestBudgetUseCase_Convert(t *testing.T) {
	planned := time.Date(2025, 3, 10, 11, 30, 0, 0, time.UTC) // 08:30 in São Paulo
	in := ConvertBudgetInput{TeamID: "team-1", PlannedDate: planned}
	lat, lng := -16.68, -49.25
	budget := entities.Budget{
		ID:                "b-1",
		ClientID:          "cli-1",
		ClientName:        "Construtora Alfa",
		Services:          []entities.ServiceItem{{Description: "Estaca", Quantity: 1, Price: 1000, FinalValue: 1000}},
		Value:             1000,
		FinalValue:        1078,
		Status:            entities.BudgetStatusAprovado,
		SelectedAddress:   "Rua das Flores, 50 | Centro | Goiânia",
		TravelDistanceKm:  13,
		TravelPrice:       78,
		TravelDescription: "13km × R$ 3.00/km × 2 (ida e volta)",
	}

	t.Run("input validation", func(t *testing.T) {
		uc, _ := newBudgetUseCase(t)
		if _, _, err := uc.Convert(context.Background(), "", in); !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
		if _, _, err := uc.Convert(context.Background(), "b-1", ConvertBudgetInput{PlannedDate: planned}); !errors.Is(err, ErrTeamRequired) {
			t.Fatalf("expected ErrTeamRequired, got %v", err)
		}
		if _, _, err := uc.Convert(context.Background(), "b-1", ConvertBudgetInput{TeamID: "team-1"}); !errors.Is(err, ErrPlannedDateRequired) {
			t.Fatalf("expected ErrPlannedDateRequired, got %v", err)
		}
	})

	t.Run("budget not found", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)
		m.teams.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1"}, nil)

		if _, _, err := uc.Convert(context.Background(), "b-1", in); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("already converted", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		converted := budget
		converted.Status = entities.BudgetStatusConvertido
		converted.JobID = "j-0"
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(converted, nil)
		m.teams.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1"}, nil)

		if _, _, err := uc.Convert(context.Background(), "b-1", in); !errors.Is(err, ErrBudgetAlreadyConverted) {
			t.Fatalf("expected ErrBudgetAlreadyConverted, got %v", err)
		}
	})

	t.Run("team not found by name", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)
		m.teams.EXPECT().GetByName(gomock.Any(), "Equipe Azul").Return(entities.Team{}, nil)

		_, _, err := uc.Convert(context.Background(), "b-1", ConvertBudgetInput{Team: "Equipe Azul", PlannedDate: planned})
		if !errors.Is(err, ErrTeamNotFound) {
			t.Fatalf("expected ErrTeamNotFound, got %v", err)
		}
	})

	t.Run("load error", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, errors.New("db"))
		m.teams.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1"}, nil).AnyTimes()

		if _, _, err := uc.Convert(context.Background(), "b-1", in); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("lost race writes nothing else", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)
		m.teams.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", Name: "Equipe Azul"}, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.sequences.EXPECT().Next(gomock.Any(), "job").Return(int64(7), nil)
		m.budgets.EXPECT().ConvertBudget(gomock.Any(), gomock.Any(), "b-1").Return(entities.Budget{}, interfaces.ErrConditionFailed)

		if _, _, err := uc.Convert(context.Background(), "b-1", in); !errors.Is(err, ErrBudgetAlreadyConverted) {
			t.Fatalf("expected ErrBudgetAlreadyConverted, got %v", err)
		}
	})

	t.Run("budget removed before write", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)
		m.teams.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", Name: "Equipe Azul"}, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.sequences.EXPECT().Next(gomock.Any(), "job").Return(int64(7), nil)
		m.budgets.EXPECT().ConvertBudget(gomock.Any(), gomock.Any(), "b-1").Return(entities.Budget{}, interfaces.ErrNotFound)

		if _, _, err := uc.Convert(context.Background(), "b-1", in); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("success copies budget and resolves coordinates", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)
		m.teams.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", Name: "Equipe Azul"}, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Addresses: []entities.ClientAddress{
			{Street: "Av. Outra", City: "Anápolis"},
			{Street: "Rua das Flores", Number: "50", Neighborhood: "Centro", City: "Goiânia", Latitude: &lat, Longitude: &lng},
		}}, nil)
		m.sequences.EXPECT().Next(gomock.Any(), "job").Return(int64(123), nil)
		m.budgets.EXPECT().ConvertBudget(gomock.Any(), gomock.Any(), "b-1").DoAndReturn(
			func(_ context.Context, j entities.Job, budgetID string) (entities.Budget, error) {
				if j.Title != "Construtora Alfa - 10/03/2025 08:30 - 000123" {
					t.Fatalf("unexpected title %q", j.Title)
				}
				if j.Status != entities.JobStatusPendente || j.TeamID != "team-1" || j.Team != "Equipe Azul" || j.BudgetID != "b-1" {
					t.Fatalf("unexpected job: %+v", j)
				}
				if j.FinalValue != 1078 || j.TravelPrice != 78 || j.TravelDescription != budget.TravelDescription || len(j.Services) != 1 {
					t.Fatalf("expected budget values copied, got %+v", j)
				}
				if j.Site != budget.SelectedAddress || j.SiteLatitude == nil || *j.SiteLatitude != lat {
					t.Fatalf("unexpected site: %+v", j)
				}
				converted := budget
				converted.Status = entities.BudgetStatusConvertido
				converted.JobID = j.ID
				return converted, nil
			},
		)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev entities.JobEvent) error {
				if ev.Type != entities.JobEventCreated || ev.BudgetID != "b-1" {
					t.Fatalf("unexpected event: %+v", ev)
				}
				return errors.New("stream down")
			},
		)

		job, updated, err := uc.Convert(context.Background(), "b-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.BudgetStatusConvertido || updated.JobID != job.ID {
			t.Fatalf("unexpected budget: %+v", updated)
		}
	})

	t.Run("client lookup failure is ignored", func(t *testing.T) {
		uc, m := newBudgetUseCase(t)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)
		m.teams.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", Name: "Equipe Azul"}, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, errors.New("db"))
		m.sequences.EXPECT().Next(gomock.Any(), "job").Return(int64(1), nil)
		m.budgets.EXPECT().ConvertBudget(gomock.Any(), gomock.Any(), "b-1").DoAndReturn(
			func(_ context.Context, j entities.Job, _ string) (entities.Budget, error) {
				if j.SiteLatitude != nil || j.SiteLongitude != nil {
					t.Fatalf("expected no coordinates, got %+v", j)
				}
				if j.Site != "Canteiro 2" || j.Notes != "levar gerador" {
					t.Fatalf("expected overrides, got %+v", j)
				}
				return budget, nil
			},
		)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		_, _, err := uc.Convert(context.Background(), "b-1", ConvertBudgetInput{TeamID: "team-1", PlannedDate: planned, Site: "Canteiro 2", Notes: "levar gerador"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMatchSiteCoordinates(t *testing.T) {
	lat1, lng1 := 1.0, 1.0
	lat2, lng2 := 2.0, 2.0
	addresses := []entities.ClientAddress{
		{Street: "Rua Sem Coordenada", City: "Goiânia"},
		{Street: "Rua A", City: "Goiânia", Latitude: &lat1, Longitude: &lng1},
		{Street: "Rua B", Number: "10", City: "Anápolis", Latitude: &lat2, Longitude: &lng2},
	}

	t.Run("case insensitive match", func(t *testing.T) {
		lat, _ := MatchSiteCoordinates(addresses, "rua b, 10 | anápolis")
		if lat == nil || *lat != 2 {
			t.Fatalf("expected second address, got %v", lat)
		}
	})

	t.Run("fallback to first with coordinates", func(t *testing.T) {
		lat, _ := MatchSiteCoordinates(addresses, "Fazenda Boa Vista")
		if lat == nil || *lat != 1 {
			t.Fatalf("expected first address with coordinates, got %v", lat)
		}
	})

	t.Run("no coordinates at all", func(t *testing.T) {
		lat, lng := MatchSiteCoordinates(addresses[:1], "Rua Sem Coordenada")
		if lat != nil || lng != nil {
			t.Fatalf("expected nil coordinates")
		}
	})
}

func TestJobTitle(t *testing.T) {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	got := JobTitle(" Alfa ", time.Date(2025, 12, 31, 23, 59, 0, 0, loc), 5, loc)
	if got != "Alfa - 31/12/2025 23:59 - 000005" {
		t.Fatalf("unexpected title %q", got)
	}
}
