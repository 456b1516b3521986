package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sells-group/ngscreen/internal/classify"
	"github.com/sells-group/ngscreen/internal/ingest"
	"github.com/sells-group/ngscreen/internal/model"
	"github.com/sells-group/ngscreen/internal/textnorm"
)

// AddressRequest carries the location fields of one account.
type AddressRequest struct {
	Nationality string `json:"nationality"`
	GeoLocation string `json:"geo_location"`
	State       string `json:"state"`
	Address     string `json:"address"`
}

// AddressResponse is the cascade decision for one account.
type AddressResponse struct {
	Status      model.Status `json:"status"`
	Reason      string       `json:"reason"`
	Signal      model.Signal `json:"signal"`
	ForeignTerm string       `json:"foreign_term,omitempty"`
}

// PhoneRequest carries one mobile number.
type PhoneRequest struct {
	Phone string `json:"phone"`
}

// PhoneResponse is the phone classification.
type PhoneResponse struct {
	Phone   string            `json:"phone"`
	Cleaned string            `json:"cleaned"`
	Status  model.PhoneStatus `json:"status"`
}

// EmailRequest carries one email address.
type EmailRequest struct {
	Email string `json:"email"`
}

// EmailResponse reports whether the address is usable.
type EmailResponse struct {
	Email string `json:"email"`
	Valid bool   `json:"valid"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRefData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.classifier.Reference().Stats())
}

func (s *Server) handleClassifyAddress(w http.ResponseWriter, r *http.Request) {
	var req AddressRequest
	if !decode(w, r, &req) {
		return
	}

	d := s.classifier.Resolve(req.Nationality, req.GeoLocation, req.State, req.Address)
	resp := AddressResponse{Status: d.Status, Reason: d.Reason, Signal: d.Signal}
	if d.Signal == model.SignalAddress && d.Status == model.StatusNonNigerian {
		resp.ForeignTerm = s.classifier.ForeignTermIn(textnorm.Normalize(req.Address))
	}

	s.log.Debug("address classified",
		zap.String("status", string(resp.Status)),
		zap.String("signal", string(resp.Signal)),
	)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClassifyPhone(w http.ResponseWriter, r *http.Request) {
	var req PhoneRequest
	if !decode(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, PhoneResponse{
		Phone:   req.Phone,
		Cleaned: classify.CleanPhone(req.Phone),
		Status:  model.PhoneStatusOf(classify.IsNigerianNumber(req.Phone)),
	})
}

func (s *Server) handleValidateEmail(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, EmailResponse{Email: req.Email, Valid: ingest.ValidEmail(req.Email)})
}
