package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"mortgage-calc/service"
)

type TermRecommendationHandler struct {
	service *service.TermRecommendationService
	log     *logrus.Logger
}

func NewTermRecommendationHandler(service *service.TermRecommendationService, log *logrus.Logger) *TermRecommendationHandler {
	return &TermRecommendationHandler{service: service, log: log}
}

func (h *TermRecommendationHandler) RecommendTerm(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.log, h.service.RecommendTerm)
}
