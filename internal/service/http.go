package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"mc-experience-service/internal/config"
	"mc-experience-service/internal/enchant"
	"mc-experience-service/internal/heads"
	"mc-experience-service/internal/repository"
	"mc-experience-service/internal/utils"
	"mc-experience-service/internal/utils/experience"
	"mc-experience-service/internal/xp"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	leaderboardCacheTTL = 30 * time.Second
)

type httpHandler struct {
	logger *zap.SugaredLogger

	enchantments map[string]*config.Enchantment
	xpH          xp.Handler
	repo         repository.Repository

	// leaderboardCache holds recently computed leaderboard responses so
	// repeated requests do not hit mongo.
	leaderboardCache *cache.Cache
}

func newHttpHandler(logger *zap.SugaredLogger, enchantCfg config.EnchantConfig, xpH xp.Handler,
	repo repository.Repository) *httpHandler {

	return &httpHandler{
		logger: logger,

		enchantments: enchantCfg.Enchantments,
		xpH:          xpH,
		repo:         repo,

		leaderboardCache: cache.New(leaderboardCacheTTL, time.Minute),
	}
}

func (h *httpHandler) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /levels/{level}", h.handleGetLevel)
	mux.HandleFunc("GET /players/{id}/experience", h.handleGetPlayerExperience)
	mux.HandleFunc("POST /players/{id}/experience", h.handleGrantExperience)
	mux.HandleFunc("GET /players/{id}/grants", h.handleGetGrants)
	mux.HandleFunc("GET /leaderboard", h.handleLeaderboard)
	mux.HandleFunc("GET /enchantments", h.handleListEnchantments)
	mux.HandleFunc("GET /enchantments/{a}/compatible/{b}", h.handleEnchantCompatible)

	return mux
}

type levelResponse struct {
	Level         int `json:"level"`
	TotalXP       int `json:"totalXp"`
	NextLevelCost int `json:"nextLevelCost"`
}

func (h *httpHandler) handleGetLevel(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(r.PathValue("level"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid level %s", r.PathValue("level")))
		return
	}

	totalXP, err := experience.XPForLevel(level)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	step, err := experience.XPBetweenLevels(level, level+1)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJson(w, http.StatusOK, levelResponse{
		Level:         level,
		TotalXP:       totalXP,
		NextLevelCost: step,
	})
}

type playerExperienceResponse struct {
	PlayerId string `json:"playerId"`
	Username string `json:"username"`

	TotalXP int `json:"totalXp"`
	Level   int `json:"level"`

	XPIntoLevel   int    `json:"xpIntoLevel"`
	NextLevelCost int    `json:"nextLevelCost"`
	Display       string `json:"display"`

	AvatarUrl string `json:"avatarUrl"`
	HeadUrl   string `json:"headUrl"`
}

func (h *httpHandler) handleGetPlayerExperience(w http.ResponseWriter, r *http.Request) {
	pId, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid player id %s", r.PathValue("id")))
		return
	}

	p, err := h.repo.GetPlayerExperience(r.Context(), pId)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.writeError(w, http.StatusNotFound, fmt.Sprintf("player %s not found", pId))
			return
		}
		h.logger.Errorw("error getting player experience", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	into, step, err := experience.Progress(p.TotalXP)
	if err != nil {
		h.logger.Errorw("error computing level progress", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	display, err := experience.DisplayString(p.TotalXP)
	if err != nil {
		h.logger.Errorw("error formatting experience", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	head := heads.ForPlayer(p.Id)

	h.writeJson(w, http.StatusOK, playerExperienceResponse{
		PlayerId: p.Id.String(),
		Username: p.Username,

		TotalXP: p.TotalXP,
		Level:   p.Level,

		XPIntoLevel:   into,
		NextLevelCost: step,
		Display:       display,

		AvatarUrl: head.AvatarURL(100),
		HeadUrl:   head.RenderURL(),
	})
}

type grantRequest struct {
	PlayerUsername string `json:"playerUsername"`
	Amount         int    `json:"amount"`
	Reason         string `json:"reason"`
}

type grantResponse struct {
	PreviousExperience int `json:"previousExperience"`
	NewExperience      int `json:"newExperience"`
	PreviousLevel      int `json:"previousLevel"`
	NewLevel           int `json:"newLevel"`
}

func (h *httpHandler) handleGrantExperience(w http.ResponseWriter, r *http.Request) {
	pId, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid player id %s", r.PathValue("id")))
		return
	}

	var req grantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.xpH.GrantExperience(r.Context(), pId, req.PlayerUsername, req.Amount, req.Reason)
	if err != nil {
		if errors.Is(err, xp.ErrNonPositiveAmount) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("error granting experience", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.writeJson(w, http.StatusOK, grantResponse{
		PreviousExperience: result.PreviousExperience,
		NewExperience:      result.NewExperience,
		PreviousLevel:      result.PreviousLevel,
		NewLevel:           result.NewLevel,
	})
}

type grantEntry struct {
	Amount     int       `json:"amount"`
	Reason     string    `json:"reason"`
	XPAfter    int       `json:"xpAfter"`
	LevelAfter int       `json:"levelAfter"`
	GrantedAt  time.Time `json:"grantedAt"`
}

type grantsResponse struct {
	Page   int64        `json:"page"`
	Size   int64        `json:"size"`
	Grants []grantEntry `json:"grants"`
}

func (h *httpHandler) handleGetGrants(w http.ResponseWriter, r *http.Request) {
	pId, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid player id %s", r.PathValue("id")))
		return
	}

	page, size := utils.ParsePageParams(r.URL.Query(), defaultPageSize, maxPageSize)

	grants, err := h.repo.GetExperienceGrants(r.Context(), pId, page, size)
	if err != nil {
		h.logger.Errorw("error getting experience grants", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	entries := make([]grantEntry, len(grants))
	for i, g := range grants {
		entries[i] = grantEntry{
			Amount:     g.Amount,
			Reason:     g.Reason,
			XPAfter:    g.XPAfter,
			LevelAfter: g.LevelAfter,
			GrantedAt:  g.GrantedAt(),
		}
	}

	h.writeJson(w, http.StatusOK, grantsResponse{
		Page:   page,
		Size:   size,
		Grants: entries,
	})
}

type leaderboardEntry struct {
	Position int    `json:"position"`
	PlayerId string `json:"playerId"`
	Username string `json:"username"`
	TotalXP  int    `json:"totalXp"`
	Level    int    `json:"level"`
}

type leaderboardResponse struct {
	Players []leaderboardEntry `json:"players"`
}

func (h *httpHandler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	_, size := utils.ParsePageParams(r.URL.Query(), 10, maxPageSize)

	cacheKey := fmt.Sprintf("leaderboard:%d", size)
	if cached, ok := h.leaderboardCache.Get(cacheKey); ok {
		h.writeJson(w, http.StatusOK, cached)
		return
	}

	players, err := h.repo.GetTopPlayers(r.Context(), size)
	if err != nil {
		h.logger.Errorw("error getting top players", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	entries := make([]leaderboardEntry, len(players))
	for i, p := range players {
		entries[i] = leaderboardEntry{
			Position: i + 1,
			PlayerId: p.Id.String(),
			Username: p.Username,
			TotalXP:  p.TotalXP,
			Level:    p.Level,
		}
	}

	resp := leaderboardResponse{Players: entries}
	h.leaderboardCache.Set(cacheKey, resp, cache.DefaultExpiration)

	h.writeJson(w, http.StatusOK, resp)
}

type enchantmentEntry struct {
	Id               string   `json:"id"`
	FriendlyName     string   `json:"friendlyName"`
	MaxLevel         int      `json:"maxLevel"`
	Weight           int      `json:"weight"`
	ExclusivityGroup string   `json:"exclusivityGroup,omitempty"`
	ItemGroups       []string `json:"itemGroups"`
}

func (h *httpHandler) handleListEnchantments(w http.ResponseWriter, r *http.Request) {
	entries := make([]enchantmentEntry, 0, len(h.enchantments))
	for _, e := range h.enchantments {
		entries = append(entries, enchantmentEntry{
			Id:               e.Id,
			FriendlyName:     e.FriendlyName,
			MaxLevel:         e.MaxLevel,
			Weight:           e.Weight,
			ExclusivityGroup: e.ExclusivityGroup,
			ItemGroups:       e.ItemGroups,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Id < entries[j].Id })

	h.writeJson(w, http.StatusOK, entries)
}

type compatibleResponse struct {
	A          string `json:"a"`
	B          string `json:"b"`
	Compatible bool   `json:"compatible"`
}

func (h *httpHandler) handleEnchantCompatible(w http.ResponseWriter, r *http.Request) {
	a, ok := h.enchantments[r.PathValue("a")]
	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("enchantment %s not found", r.PathValue("a")))
		return
	}

	b, ok := h.enchantments[r.PathValue("b")]
	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("enchantment %s not found", r.PathValue("b")))
		return
	}

	h.writeJson(w, http.StatusOK, compatibleResponse{
		A:          a.Id,
		B:          b.Id,
		Compatible: enchant.Compatible(a, b),
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *httpHandler) writeJson(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Errorw("error encoding response", "error", err)
	}
}

func (h *httpHandler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJson(w, status, errorResponse{Error: msg})
}
