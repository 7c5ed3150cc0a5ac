package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pasantias/contexts/internship-program/proposal-service/adapters/memory"
	"pasantias/contexts/internship-program/proposal-service/domain/entities"
	domainerrors "pasantias/contexts/internship-program/proposal-service/domain/errors"
	"pasantias/contexts/internship-program/proposal-service/ports"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newProposalFixture() (ProposalUseCase, *memory.Store, time.Time) {
	store := memory.NewStore(nil)
	store.SetActiveConvocatoria(ports.ConvocatoriaProjection{
		ConvocatoriaID:  10,
		UUID:            "conv-10",
		Deadline:        time.Now().UTC().AddDate(1, 0, 0),
		InternshipTypes: []string{"Estadía", "Estancia I"},
		Tutors: []ports.TutorRef{
			{ID: 1, Name: "Laura Medina", Email: "lmedina@uni.edu"},
		},
	})
	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)
	uc := ProposalUseCase{
		Proposals:     store,
		Convocatorias: store,
		Clock:         fixedClock{now: now},
		IDGen:         store,
	}
	return uc, store, now
}

func validCreateCommand(studentID int64) CreateProposalCommand {
	return CreateProposalCommand{
		StudentID:           studentID,
		TutorID:             1,
		InternshipType:      "Estadía",
		CompanyShortName:    "Acme",
		CompanyLegalName:    "Acme SA de CV",
		CompanyTaxID:        "ACM990101XYZ",
		AddressState:        "Querétaro",
		AddressMunicipality: "El Marqués",
		ContactName:         "Rosa Fuentes",
		ContactEmail:        "rfuentes@acme.mx",
		SupervisorName:      "Pablo Ríos",
		SupervisorEmail:     "prios@acme.mx",
		ProjectName:         "Portal de inventarios",
		ProjectStart:        "2026-04-01",
		ProjectEnd:          "2026-08-01",
		GeneralObjective:    "Construir el portal de inventarios de planta.",
	}
}

func TestCreateProposal(t *testing.T) {
	uc, _, _ := newProposalFixture()

	created, err := uc.CreateProposal(context.Background(), validCreateCommand(100))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != entities.StatusPending {
		t.Fatalf("expected new proposal in %s, got %s", entities.StatusPending, created.Status)
	}
	if created.ConvocatoriaID != 10 {
		t.Fatalf("expected proposal bound to active convocatoria, got %d", created.ConvocatoriaID)
	}
	if created.TutorName != "Laura Medina" || created.TutorEmail != "lmedina@uni.edu" {
		t.Fatalf("expected tutor snapshot from roster, got %q %q", created.TutorName, created.TutorEmail)
	}
}

func TestCreateProposalBlockedByExistingOne(t *testing.T) {
	uc, _, _ := newProposalFixture()
	ctx := context.Background()

	if _, err := uc.CreateProposal(ctx, validCreateCommand(100)); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := uc.CreateProposal(ctx, validCreateCommand(100))
	if !errors.Is(err, domainerrors.ErrProposalExists) {
		t.Fatalf("expected ErrProposalExists, got %v", err)
	}
	if !strings.Contains(err.Error(), string(entities.StatusPending)) {
		t.Fatalf("expected error to name the blocking status, got %q", err.Error())
	}
}

func TestCreateProposalAllowedAfterRejection(t *testing.T) {
	uc, _, _ := newProposalFixture()
	ctx := context.Background()

	first, err := uc.CreateProposal(ctx, validCreateCommand(100))
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := uc.SetStatus(ctx, first.UUID, entities.StatusRejected); err != nil {
		t.Fatalf("status override failed: %v", err)
	}

	if err := uc.ValidateNewProposal(ctx, 100); err != nil {
		t.Fatalf("expected resubmission allowed after rejection, got %v", err)
	}
	if _, err := uc.CreateProposal(ctx, validCreateCommand(100)); err != nil {
		t.Fatalf("resubmission failed: %v", err)
	}
}

func TestCreateProposalMembershipChecks(t *testing.T) {
	uc, store, _ := newProposalFixture()
	ctx := context.Background()

	wrongType := validCreateCommand(100)
	wrongType.InternshipType = "Estadía 2"
	if _, err := uc.CreateProposal(ctx, wrongType); !errors.Is(err, domainerrors.ErrTypeNotOffered) {
		t.Fatalf("expected ErrTypeNotOffered, got %v", err)
	}

	wrongTutor := validCreateCommand(100)
	wrongTutor.TutorID = 99
	if _, err := uc.CreateProposal(ctx, wrongTutor); !errors.Is(err, domainerrors.ErrTutorNotInConvocatoria) {
		t.Fatalf("expected ErrTutorNotInConvocatoria, got %v", err)
	}

	store.ClearActiveConvocatoria()
	if _, err := uc.CreateProposal(ctx, validCreateCommand(100)); !errors.Is(err, domainerrors.ErrNoActiveConvocatoria) {
		t.Fatalf("expected ErrNoActiveConvocatoria, got %v", err)
	}
}

func TestCreateProposalRejectedWhenCallDeadlinePassed(t *testing.T) {
	uc, store, _ := newProposalFixture()
	ctx := context.Background()

	// Still flagged active because the expiration sweep has not run yet.
	store.SetActiveConvocatoria(ports.ConvocatoriaProjection{
		ConvocatoriaID:  10,
		UUID:            "conv-10",
		Deadline:        time.Now().UTC().Add(-48 * time.Hour),
		InternshipTypes: []string{"Estadía"},
		Tutors: []ports.TutorRef{
			{ID: 1, Name: "Laura Medina", Email: "lmedina@uni.edu"},
		},
	})

	if _, err := uc.CreateProposal(ctx, validCreateCommand(100)); !errors.Is(err, domainerrors.ErrNoActiveConvocatoria) {
		t.Fatalf("expected ErrNoActiveConvocatoria past the deadline, got %v", err)
	}
}

func TestCreateProposalFormValidation(t *testing.T) {
	uc, _, _ := newProposalFixture()
	ctx := context.Background()

	blank := func(mutate func(*CreateProposalCommand)) CreateProposalCommand {
		cmd := validCreateCommand(100)
		mutate(&cmd)
		return cmd
	}
	required := map[string]CreateProposalCommand{
		"general objective":    blank(func(c *CreateProposalCommand) { c.GeneralObjective = "   " }),
		"company tax id":       blank(func(c *CreateProposalCommand) { c.CompanyTaxID = "" }),
		"address state":        blank(func(c *CreateProposalCommand) { c.AddressState = "" }),
		"address municipality": blank(func(c *CreateProposalCommand) { c.AddressMunicipality = " " }),
	}
	for name, cmd := range required {
		if _, err := uc.CreateProposal(ctx, cmd); !errors.Is(err, domainerrors.ErrInvalidProposalInput) {
			t.Fatalf("%s: expected ErrInvalidProposalInput for blank field, got %v", name, err)
		}
	}

	badEmail := validCreateCommand(100)
	badEmail.SupervisorEmail = "prios-at-acme"
	if _, err := uc.CreateProposal(ctx, badEmail); !errors.Is(err, domainerrors.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestCreateProposalDateRules(t *testing.T) {
	uc, _, _ := newProposalFixture()
	ctx := context.Background()

	cases := []struct {
		name  string
		start string
		end   string
		want  error
	}{
		{name: "malformed", start: "01/04/2026", end: "2026-08-01", want: domainerrors.ErrInvalidProjectDates},
		{name: "start in past", start: "2026-03-09", end: "2026-08-01", want: domainerrors.ErrInvalidProjectDates},
		{name: "end before start", start: "2026-04-01", end: "2026-03-15", want: domainerrors.ErrInvalidProjectDates},
		{name: "too short", start: "2026-04-01", end: "2026-04-20", want: domainerrors.ErrProjectTooShort},
	}
	for _, tc := range cases {
		cmd := validCreateCommand(100)
		cmd.ProjectStart = tc.start
		cmd.ProjectEnd = tc.end
		if _, err := uc.CreateProposal(ctx, cmd); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestUpdateProposal(t *testing.T) {
	uc, _, _ := newProposalFixture()
	ctx := context.Background()

	created, err := uc.CreateProposal(ctx, validCreateCommand(100))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newName := "  Portal de inventarios v2  "
	updated, err := uc.UpdateProposal(ctx, UpdateProposalCommand{
		ProposalUUID: created.UUID,
		StudentID:    100,
		ProjectName:  &newName,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ProjectName != "Portal de inventarios v2" {
		t.Fatalf("expected trimmed patched name, got %q", updated.ProjectName)
	}
	if updated.GeneralObjective != created.GeneralObjective {
		t.Fatalf("expected untouched fields to survive the patch")
	}
}

func TestUpdateProposalOwnershipAndLock(t *testing.T) {
	uc, _, _ := newProposalFixture()
	ctx := context.Background()

	created, err := uc.CreateProposal(ctx, validCreateCommand(100))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	name := "Otro nombre"
	if _, err := uc.UpdateProposal(ctx, UpdateProposalCommand{
		ProposalUUID: created.UUID,
		StudentID:    200,
		ProjectName:  &name,
	}); !errors.Is(err, domainerrors.ErrProposalNotFound) {
		t.Fatalf("expected ErrProposalNotFound for a stranger, got %v", err)
	}

	if _, err := uc.SetStatus(ctx, created.UUID, entities.StatusApproved); err != nil {
		t.Fatalf("status override failed: %v", err)
	}
	if _, err := uc.UpdateProposal(ctx, UpdateProposalCommand{
		ProposalUUID: created.UUID,
		StudentID:    100,
		ProjectName:  &name,
	}); !errors.Is(err, domainerrors.ErrProposalLocked) {
		t.Fatalf("expected ErrProposalLocked after approval, got %v", err)
	}
}

func TestSetStatusRejectsUnknownValues(t *testing.T) {
	uc, _, _ := newProposalFixture()
	ctx := context.Background()

	created, err := uc.CreateProposal(ctx, validCreateCommand(100))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := uc.SetStatus(ctx, created.UUID, entities.ProposalStatus("EN_PAUSA")); !errors.Is(err, domainerrors.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
