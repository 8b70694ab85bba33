package transport

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/address"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/scripthash"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/xpub"
)

var errNotFound = errors.New("not found")

// RESTHandler serves the address and block routes.
type RESTHandler struct {
	resolver  AddressResolver
	snapshots HeaderSnapshots
	metrics   HTTPMetrics
	logger    *zap.Logger
	mux       *http.ServeMux
}

func NewRESTHandler(resolver AddressResolver, snapshots HeaderSnapshots, metrics HTTPMetrics, logger *zap.Logger) (*RESTHandler, error) {
	if resolver == nil {
		return nil, errors.New("address resolver is required")
	}
	if snapshots == nil {
		return nil, errors.New("header snapshots are required")
	}
	if metrics == nil {
		return nil, errors.New("http metrics is required")
	}

	h := &RESTHandler{
		resolver:  resolver,
		snapshots: snapshots,
		metrics:   metrics,
		logger:    logger.Named("rest"),
		mux:       http.NewServeMux(),
	}
	h.handle("GET /api/address/{input}", "address", h.address)
	h.handle("GET /api/address/{input}/{mode}", "address_mode", h.address)
	h.handle("GET /api/blocks/tip/height", "tip_height", h.tipHeight)
	h.handle("GET /api/blocks/tip/hash", "tip_hash", h.tipHash)
	h.handle("GET /api/block-height/{height}", "block_height", h.blockAtHeight)
	h.handle("GET /api/block/{hash}/status", "block_status", h.blockStatus)
	h.handle("GET /api/block/{hash}/header", "block_header", h.blockHeader)
	return h, nil
}

func (h *RESTHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type response struct {
	body        []byte
	contentType string
}

func textResponse(s string) response {
	return response{body: []byte(s), contentType: "text/plain"}
}

func (h *RESTHandler) handle(pattern, route string, fn func(r *http.Request) (response, error)) {
	h.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		code := http.StatusOK

		resp, err := fn(r)
		if err != nil {
			code = statusCode(err)
			if code == http.StatusInternalServerError {
				h.logger.Error("request failed", zap.String("route", route), zap.String("path", r.URL.Path), zap.Error(err))
				resp = textResponse(http.StatusText(code))
			} else {
				resp = textResponse(err.Error())
			}
		}

		w.Header().Set("Content-Type", resp.contentType)
		w.WriteHeader(code)
		if _, err := w.Write(resp.body); err != nil {
			h.logger.Debug("write response", zap.String("route", route), zap.Error(err))
		}
		h.metrics.ObserveRequest(route, code, started)
	})
}

// address answers a single address with one object and batches or xpubs with a list.
func (h *RESTHandler) address(r *http.Request) (response, error) {
	input := r.PathValue("input")
	mode, err := address.ParseMode(r.PathValue("mode"))
	if err != nil {
		return response{}, err
	}

	infos, err := h.resolver.Resolve(r.Context(), input, mode)
	if err != nil {
		return response{}, err
	}

	req := address.Classify(input)
	if !req.XPub && len(req.Addresses) == 1 {
		if len(infos) == 0 {
			return response{}, scripthash.ErrInvalidAddress
		}
		return jsonResponse(infos[0])
	}
	return jsonResponse(infos)
}

func (h *RESTHandler) tipHeight(_ *http.Request) (response, error) {
	best, ok := h.snapshots.Snapshot().Best()
	if !ok {
		return response{}, errNotFound
	}
	return textResponse(strconv.FormatUint(best.Height(), 10)), nil
}

func (h *RESTHandler) tipHash(_ *http.Request) (response, error) {
	best, ok := h.snapshots.Snapshot().Best()
	if !ok {
		return response{}, errNotFound
	}
	return textResponse(best.Hash().String()), nil
}

func (h *RESTHandler) blockAtHeight(r *http.Request) (response, error) {
	height, err := strconv.ParseUint(r.PathValue("height"), 10, 64)
	if err != nil {
		return response{}, badRequest("invalid block height")
	}
	entry, ok := h.snapshots.Snapshot().HeaderByHeight(height)
	if !ok {
		return response{}, errNotFound
	}
	return textResponse(entry.Hash().String()), nil
}

func (h *RESTHandler) blockStatus(r *http.Request) (response, error) {
	hash, err := pathHash(r)
	if err != nil {
		return response{}, err
	}
	return jsonResponse(h.snapshots.Snapshot().Status(hash))
}

func (h *RESTHandler) blockHeader(r *http.Request) (response, error) {
	hash, err := pathHash(r)
	if err != nil {
		return response{}, err
	}
	entry, ok := h.snapshots.Snapshot().HeaderByBlockHash(hash)
	if !ok {
		return response{}, errNotFound
	}
	header := entry.Header()
	var buf bytes.Buffer
	if err := header.Serialize(&buf); err != nil {
		return response{}, err
	}
	return textResponse(hex.EncodeToString(buf.Bytes())), nil
}

func pathHash(r *http.Request) (chainhash.Hash, error) {
	raw := r.PathValue("hash")
	if len(raw) != 2*chainhash.HashSize {
		return chainhash.Hash{}, badRequest("invalid block hash")
	}
	hash, err := chainhash.NewHashFromStr(raw)
	if err != nil {
		return chainhash.Hash{}, badRequest("invalid block hash")
	}
	return *hash, nil
}

func jsonResponse(v any) (response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return response{}, err
	}
	return response{body: body, contentType: "application/json"}, nil
}

type badRequestError struct {
	msg string
}

func (e badRequestError) Error() string { return e.msg }

func badRequest(msg string) error {
	return badRequestError{msg: msg}
}

func statusCode(err error) int {
	var bad badRequestError
	switch {
	case errors.As(err, &bad),
		errors.Is(err, address.ErrUnknownMode),
		errors.Is(err, address.ErrXPubUnsupported),
		errors.Is(err, scripthash.ErrInvalidAddress),
		errors.Is(err, xpub.ErrInvalidXPub),
		errors.Is(err, xpub.ErrPageLimit):
		return http.StatusBadRequest
	case errors.Is(err, errNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
