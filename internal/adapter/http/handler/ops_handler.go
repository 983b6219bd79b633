package handler

import (
	"crypto/subtle"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"reward-gateway/config"
	"reward-gateway/internal/adapter/http/dto"
	"reward-gateway/internal/core/domain"
	"reward-gateway/internal/core/ports"
	"reward-gateway/pkg/apperror"
	"reward-gateway/pkg/response"
)

// OpsHandler serves the operator API: login, reward search, pool inspection
// and manual reprocessing.
type OpsHandler struct {
	repo      ports.RewardRepository
	pool      ports.SenderPool
	reprocess ports.ReprocessService
	hashSvc   ports.HashService
	tokenSvc  ports.TokenService
	ops       config.OpsConfig
	log       zerolog.Logger
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(
	repo ports.RewardRepository,
	pool ports.SenderPool,
	reprocess ports.ReprocessService,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	ops config.OpsConfig,
	log zerolog.Logger,
) *OpsHandler {
	return &OpsHandler{
		repo:      repo,
		pool:      pool,
		reprocess: reprocess,
		hashSvc:   hashSvc,
		tokenSvc:  tokenSvc,
		ops:       ops,
		log:       log,
	}
}

// Login handles POST /api/v1/ops/login.
func (h *OpsHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.ops.Username)) == 1
	passwordMatch, err := h.hashSvc.Verify(req.Password, h.ops.PasswordHash)
	if err != nil {
		h.log.Error().Err(err).Msg("password verification failed")
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}
	if !usernameMatch || !passwordMatch {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	token, expiry, err := h.tokenSvc.Generate(req.Username)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.LoginResponse{Token: token, Expiry: expiry.Unix()})
}

// ListRewards handles GET /api/v1/ops/rewards.
// Query params: status, recipient, type, limit, offset, order (asc|desc).
func (h *OpsHandler) ListRewards(c *gin.Context) {
	params := ports.RewardSearchParams{
		Recipient: c.Query("recipient"),
		Ascending: c.Query("order") == "asc",
	}

	if s := c.Query("status"); s != "" {
		status := domain.RewardStatus(s)
		params.Status = &status
	}
	if ty := c.Query("type"); ty != "" {
		rewardType := domain.RewardType(ty)
		if !domain.KnownRewardType(rewardType) {
			response.Error(c, apperror.Validation("unknown reward type: "+ty))
			return
		}
		params.RewardType = &rewardType
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > 1000 {
			response.Error(c, apperror.Validation("limit must be 1-1000"))
			return
		}
		params.Limit = n
	}
	if offset := c.Query("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			response.Error(c, apperror.Validation("offset must be non-negative"))
			return
		}
		params.Offset = n
	}

	records, err := h.repo.Search(c.Request.Context(), params)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	items := make([]dto.RewardResponse, 0, len(records))
	for i := range records {
		items = append(items, toRewardResponse(&records[i]))
	}
	response.OK(c, dto.RewardListResponse{Items: items, Limit: params.Limit, Offset: params.Offset})
}

// GetReward handles GET /api/v1/ops/rewards/:id.
func (h *OpsHandler) GetReward(c *gin.Context) {
	rec, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if rec == nil {
		response.Error(c, apperror.ErrNotFound("Reward"))
		return
	}
	response.OK(c, toRewardResponse(rec))
}

// Stats handles GET /api/v1/ops/stats.
func (h *OpsHandler) Stats(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	response.OK(c, dto.StatsResponse{
		Total:     stats.Total,
		Todo:      stats.Todo,
		Success:   stats.Success,
		Errored:   stats.Errored,
		TotalPaid: stats.TotalPaid,
	})
}

// Pool handles GET /api/v1/ops/pool.
func (h *OpsHandler) Pool(c *gin.Context) {
	snapshot := h.pool.Snapshot()
	wallets := make([]dto.PoolWalletResponse, 0, len(snapshot))
	for _, w := range snapshot {
		wallets = append(wallets, dto.PoolWalletResponse{
			Address:      w.Address,
			Balance:      w.Balance,
			BalanceReady: w.BalanceReady,
			InUseCount:   w.InUseCount,
			FailCount:    w.FailCount,
			Banned:       w.Banned,
		})
	}
	response.OK(c, dto.PoolResponse{Wallets: wallets, UsableCount: h.pool.UsableSenderCount()})
}

// Reprocess handles POST /api/v1/ops/reprocess: one synchronous sweep.
func (h *OpsHandler) Reprocess(c *gin.Context) {
	result := h.reprocess.RunSweep(c.Request.Context())
	response.OK(c, dto.SweepResponse{
		Processed: result.Processed,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
	})
}

func toRewardResponse(rec *domain.RewardRecord) dto.RewardResponse {
	return dto.RewardResponse{
		RewardID:   rec.RewardID,
		Recipient:  rec.Recipient,
		Amount:     rec.Amount,
		RewardType: string(rec.RewardType),
		Status:     string(rec.Status),
		TxID:       rec.TxID,
		TxHash:     rec.TxHash,
		TsCreated:  rec.TsCreated.UTC().Format(time.RFC3339),
		TsUpdated:  rec.TsUpdated.UTC().Format(time.RFC3339),
	}
}
