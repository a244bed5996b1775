// Package v1alpha1 handles the HTTP interface
package v1alpha1

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KirkDiggler/rpg-encounters/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/monster"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	EncounterService encounter.Service
	MonsterService   monster.Service
	DiceService      dice.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.EncounterService == nil {
		vb.RequiredField("EncounterService")
	}
	if c.MonsterService == nil {
		vb.RequiredField("MonsterService")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	return vb.Build()
}

// Handler serves the encounter, monster and dice routes
type Handler struct {
	encounterService encounter.Service
	monsterService   monster.Service
	diceService      dice.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		encounterService: cfg.EncounterService,
		monsterService:   cfg.MonsterService,
		diceService:      cfg.DiceService,
	}, nil
}

// requestTimeout bounds every request handled by Routes
const requestTimeout = 60 * time.Second

// Routes returns the chi router with request ID, logging, recovery and
// timeout middleware applied
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errors.NotFoundf("no route for %s", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: r.Method + " is not allowed on " + r.URL.Path,
		})
	})

	r.Post("/encounters", h.GenerateEncounter)
	r.Post("/dice/roll", h.RollDice)

	r.Route("/monsters", func(r chi.Router) {
		r.Get("/", h.ListMonsters)
		r.Post("/", h.CreateMonster)
		r.Get("/{name}", h.GetMonster)
		r.Put("/{name}", h.UpdateMonster)
		r.Delete("/{name}", h.DeleteMonster)
	})

	return r
}

// monsterName returns the {name} path parameter, decoded when the request
// path carried escapes the router kept
func monsterName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

// GenerateEncounter handles POST /encounters
func (h *Handler) GenerateEncounter(w http.ResponseWriter, r *http.Request) {
	var req GenerateEncounterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.encounterService.Generate(r.Context(), &encounter.GenerateInput{
		CharacterLevels: req.CharacterLevels,
		Difficulty:      req.Difficulty,
		Monsters:        req.Monsters,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	combatants := out.Monsters
	if combatants == nil {
		combatants = []*dnd5e.EncounterMonster{}
	}
	writeJSON(w, http.StatusOK, GenerateEncounterResponse{
		Monsters:        combatants,
		TotalXP:         out.TotalXP,
		AdjustedXP:      out.AdjustedXP,
		Difficulty:      out.Difficulty,
		PartyThresholds: out.PartyThresholds,
	})
}

// ListMonsters handles GET /monsters
func (h *Handler) ListMonsters(w http.ResponseWriter, r *http.Request) {
	out, err := h.monsterService.ListMonsters(r.Context(), &monster.ListMonstersInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	list := out.Monsters
	if list == nil {
		list = []*dnd5e.Monster{}
	}
	writeJSON(w, http.StatusOK, list)
}

// GetMonster handles GET /monsters/{name}
func (h *Handler) GetMonster(w http.ResponseWriter, r *http.Request) {
	out, err := h.monsterService.GetMonster(r.Context(), &monster.GetMonsterInput{Name: monsterName(r)})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Monster)
}

// CreateMonster handles POST /monsters. A duplicate name is a client error.
func (h *Handler) CreateMonster(w http.ResponseWriter, r *http.Request) {
	var m dnd5e.Monster
	if err := decodeJSON(w, r, &m); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.monsterService.CreateMonster(r.Context(), &monster.CreateMonsterInput{Monster: &m})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !out.Created {
		writeError(w, r, errors.InvalidArgumentf("monster %q already exists", m.Name).
			WithMeta("monster_name", m.Name))
		return
	}

	writeJSON(w, http.StatusCreated, out.Monster)
}

// UpdateMonster handles PUT /monsters/{name}
func (h *Handler) UpdateMonster(w http.ResponseWriter, r *http.Request) {
	name := monsterName(r)

	var m dnd5e.Monster
	if err := decodeJSON(w, r, &m); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.monsterService.UpdateMonster(r.Context(), &monster.UpdateMonsterInput{
		Name:    name,
		Monster: &m,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !out.Updated {
		writeError(w, r, errors.MonsterNotFound(name))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteMonster handles DELETE /monsters/{name}
func (h *Handler) DeleteMonster(w http.ResponseWriter, r *http.Request) {
	name := monsterName(r)

	out, err := h.monsterService.DeleteMonster(r.Context(), &monster.DeleteMonsterInput{Name: name})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !out.Deleted {
		writeError(w, r, errors.MonsterNotFound(name))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RollDice handles POST /dice/roll
func (h *Handler) RollDice(w http.ResponseWriter, r *http.Request) {
	var req RollDiceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.diceService.RollDice(r.Context(), &dice.RollDiceInput{
		Notation:    req.Notation,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := RollDiceResponse{
		RollID:      out.Roll.RollID,
		Notation:    out.Roll.Notation,
		Pools:       make([]PoolRoll, 0, len(out.Roll.Pools)),
		Modifier:    out.Roll.Modifier,
		Total:       out.Roll.Total,
		Description: out.Roll.Description,
	}
	for _, p := range out.Roll.Pools {
		resp.Pools = append(resp.Pools, PoolRoll{Notation: p.Notation, Dice: p.Dice, Total: p.Total})
	}
	writeJSON(w, http.StatusOK, resp)
}
