package httpapi

import (
	"net/http"
	"strconv"

	"boutique-app/internal/product"
	"boutique-app/internal/wizard"

	"github.com/go-chi/chi/v5"
)

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.gate.Login(req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.sess.MarkAdminAuthed()
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

type wizardStateResponse struct {
	Step  wizard.Step  `json:"step"`
	Draft wizard.Draft `json:"draft"`
}

func (h *Handler) wizardView() wizardStateResponse {
	return wizardStateResponse{
		Step:  h.sess.Wizard.Step(),
		Draft: h.sess.Wizard.Draft(),
	}
}

func (h *Handler) wizardState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.wizardView())
}

func (h *Handler) wizardNext(w http.ResponseWriter, r *http.Request) {
	h.sess.Wizard.Next()
	writeJSON(w, http.StatusOK, h.wizardView())
}

func (h *Handler) wizardBack(w http.ResponseWriter, r *http.Request) {
	h.sess.Wizard.Back()
	writeJSON(w, http.StatusOK, h.wizardView())
}

func (h *Handler) wizardEdit(w http.ResponseWriter, r *http.Request) {
	if err := h.sess.Wizard.Edit(); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.wizardView())
}

func (h *Handler) wizardDiscard(w http.ResponseWriter, r *http.Request) {
	h.sess.Wizard.Discard()
	writeJSON(w, http.StatusOK, h.wizardView())
}

type wizardIdentityRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (h *Handler) wizardIdentity(w http.ResponseWriter, r *http.Request) {
	var req wizardIdentityRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.sess.Wizard.SetIdentity(req.ID, req.Title); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.wizardView())
}

type wizardImageRequest struct {
	URL string `json:"url"`
}

func (h *Handler) wizardAddImage(w http.ResponseWriter, r *http.Request) {
	var req wizardImageRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.sess.Wizard.AddImage(req.URL); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.wizardView())
}

func (h *Handler) wizardRemoveImage(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "index must be an integer", http.StatusBadRequest)
		return
	}
	if err := h.sess.Wizard.RemoveImage(index); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.wizardView())
}

type wizardStockRequest struct {
	Stock       int    `json:"stock"`
	Description string `json:"description"`
}

func (h *Handler) wizardStock(w http.ResponseWriter, r *http.Request) {
	var req wizardStockRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.sess.Wizard.SetStock(req.Stock, req.Description); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.wizardView())
}

type wizardClassificationRequest struct {
	Category product.Category `json:"category"`
	Size     string           `json:"size"`
}

func (h *Handler) wizardClassification(w http.ResponseWriter, r *http.Request) {
	var req wizardClassificationRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.sess.Wizard.SetClassification(req.Category, req.Size); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.wizardView())
}

type wizardPriceRequest struct {
	Price int64 `json:"price"`
}

func (h *Handler) wizardPrice(w http.ResponseWriter, r *http.Request) {
	var req wizardPriceRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.sess.Wizard.SetPrice(req.Price); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.wizardView())
}

func (h *Handler) wizardCommit(w http.ResponseWriter, r *http.Request) {
	p, err := h.sess.Wizard.Commit(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}
