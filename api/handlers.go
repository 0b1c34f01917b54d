package api

import (
	"encoding/json"
	"net/http"
	"time"

	"ecotokens/config"
	"ecotokens/models"
	"ecotokens/service"
	log "github.com/sirupsen/logrus"
)

// Handler holds the services backing the rewards endpoints
type Handler struct {
	rewards         service.RewardsService
	leaderboard     service.LeaderboardService
	achievements    service.AchievementService
	leaderboardSize int
	historyLimit    int
}

// NewHandler creates a new API handler
func NewHandler(rewards service.RewardsService, leaderboard service.LeaderboardService, achievements service.AchievementService, cfg *config.Config) *Handler {
	return &Handler{
		rewards:         rewards,
		leaderboard:     leaderboard,
		achievements:    achievements,
		leaderboardSize: cfg.LeaderboardSize,
		historyLimit:    cfg.HistoryLimit,
	}
}

type earnResponse struct {
	Success       bool                 `json:"success"`
	TokensEarned  float64              `json:"tokens_earned"`
	CarbonSavedKG float64              `json:"carbon_saved_kg"`
	Totals        *models.TokenSummary `json:"totals"`
	Unlocked      []models.Badge       `json:"unlocked"`
}

// EarnTokens handles POST /earn-tokens
func (h *Handler) EarnTokens(w http.ResponseWriter, r *http.Request) {
	var req earnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	userID, err := resolveUserID(r, req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	carbonSavedKG, err := coerceSavings(req.CarbonSavedKG)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.rewards.EarnTokens(r.Context(), userID, carbonSavedKG)
	if err != nil {
		if service.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).WithField("userId", userID).Error("Earn request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	unlocked := result.Unlocked
	if unlocked == nil {
		unlocked = []models.Badge{}
	}

	writeJSON(w, http.StatusOK, earnResponse{
		Success:       true,
		TokensEarned:  result.TokensEarned,
		CarbonSavedKG: result.CarbonSavedKG,
		Totals:        result.Totals,
		Unlocked:      unlocked,
	})
}

type historyItem struct {
	Date          string  `json:"date"`
	CarbonSavedKG float64 `json:"carbon_saved_kg"`
	TokensEarned  float64 `json:"tokens_earned"`
}

type totalsResponse struct {
	Success bool                 `json:"success"`
	Totals  *models.TokenSummary `json:"totals"`
	History []historyItem        `json:"history"`
}

// GetTokens handles GET /get-tokens
func (h *Handler) GetTokens(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	totals, err := h.rewards.Summarize(r.Context(), userID, time.Now().UTC())
	if err != nil {
		log.WithError(err).WithField("userId", userID).Error("Totals request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	entries, err := h.rewards.GetHistory(r.Context(), userID, h.historyLimit)
	if err != nil {
		log.WithError(err).WithField("userId", userID).Error("History request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	history := make([]historyItem, 0, len(entries))
	for _, entry := range entries {
		history = append(history, historyItem{
			Date:          entry.EntryDate.Format("2006-01-02"),
			CarbonSavedKG: entry.CarbonSavedKG,
			TokensEarned:  entry.TokensEarned,
		})
	}

	writeJSON(w, http.StatusOK, totalsResponse{
		Success: true,
		Totals:  totals,
		History: history,
	})
}

type leaderRow struct {
	UserID         string  `json:"user_id"`
	DisplayName    string  `json:"display_name"`
	LifetimeTokens float64 `json:"lifetime_tokens"`
}

type leaderboardResponse struct {
	Success bool        `json:"success"`
	Leaders []leaderRow `json:"leaders"`
}

// Leaderboard handles GET /leaderboard
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboard.Top(r.Context(), h.leaderboardSize)
	if err != nil {
		log.WithError(err).Error("Leaderboard request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	leaders := make([]leaderRow, 0, len(entries))
	for _, entry := range entries {
		leaders = append(leaders, leaderRow{
			UserID:         entry.UserID,
			DisplayName:    entry.DisplayName,
			LifetimeTokens: entry.LifetimeTokens,
		})
	}

	writeJSON(w, http.StatusOK, leaderboardResponse{
		Success: true,
		Leaders: leaders,
	})
}

type achievementRow struct {
	Badge      models.Badge `json:"badge"`
	UnlockedOn string       `json:"unlocked_on"`
}

type achievementsResponse struct {
	Success      bool             `json:"success"`
	Achievements []achievementRow `json:"achievements"`
}

// Achievements handles GET /achievements
func (h *Handler) Achievements(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.achievements.GetUserAchievements(r.Context(), userID)
	if err != nil {
		log.WithError(err).WithField("userId", userID).Error("Achievements request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	achievements := make([]achievementRow, 0, len(records))
	for _, record := range records {
		achievements = append(achievements, achievementRow{
			Badge:      record.Badge,
			UnlockedOn: record.UnlockedAt.UTC().Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, achievementsResponse{
		Success:      true,
		Achievements: achievements,
	})
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health handles GET /health, a liveness probe with no business logic
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
