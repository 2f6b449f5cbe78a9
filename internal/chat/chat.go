// Package chat is the mocked recommendation service. It returns a canned
// styling suggestion; real recommendations are someone else's problem.
package chat

import (
	"context"
	"math/rand/v2"
	"strings"
)

// Request is the body of POST /api/chat/recommend.
type Request struct {
	Message string   `json:"message" binding:"required"`
	Context *Context `json:"context,omitempty"`
}

// Context carries optional hints from the client.
type Context struct {
	Budget   float64 `json:"budget,omitempty"`
	Occasion string  `json:"occasion,omitempty"`
	Style    string  `json:"style,omitempty"`
}

// Response is a canned message plus product ids to surface.
type Response struct {
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
}

var cannedResponses = []string{
	"Sofistike bir akşam görünümü için İpek Gece Elbisemizi İtalyan deri aksesuarlarla tamamlamanızı öneririm.",
	"Yönetici toplantılarınız için Gece Mavisi Takım Elbise mükemmel olacaktır. Klasik Oxford Gömlek ile eşleştirin.",
	"Şık rahat bir etkinlik için Kaşmir Karışımlı Paltomuzun altına Merino Yün Balıkçı Yaka giyebilirsiniz.",
	"Kadife Kokteyl Elbisemiz akşam etkinlikleri için idealdir. Zarif aksesuarlarla tamamlayın.",
}

var cannedRecommendations = []string{"1", "2", "4"}

// Service picks a canned response. The picker is injectable for tests.
type Service struct {
	pick func(n int) int
}

func NewService() *Service {
	return &Service{pick: rand.IntN}
}

// NewServiceWithPicker fixes the response choice.
func NewServiceWithPicker(pick func(n int) int) *Service {
	return &Service{pick: pick}
}

// Recommend answers with one of the canned responses. When the request names
// an occasion, the reply is prefixed with it.
func (s *Service) Recommend(_ context.Context, req Request) Response {
	msg := cannedResponses[s.pick(len(cannedResponses))]
	if req.Context != nil && req.Context.Occasion != "" {
		msg = req.Context.Occasion + " için, " + strings.ToLower(msg)
	}
	return Response{
		Message:         msg,
		Recommendations: append([]string(nil), cannedRecommendations...),
	}
}
