package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/mathquest/internal/diagnosis"
	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/session"
)

type questionJSON struct {
	Kind   problemgen.Kind `json:"kind"`
	Tier   problemgen.Tier `json:"tier,omitempty"`
	Number int             `json:"number,omitempty"` // 1-based
	Date   string          `json:"date,omitempty"`
	Text   string          `json:"text"`
	Status string          `json:"status,omitempty"`
	Solved *bool           `json:"solved,omitempty"` // daily only
}

type guessRequest struct {
	Guess string `json:"guess"`
}

type moveRequest struct {
	Direction int `json:"direction"`
}

type submitResponse struct {
	Accepted        bool           `json:"accepted"`
	Correct         bool           `json:"correct"`
	FirstCompletion bool           `json:"first_completion"`
	AwardedPoints   int            `json:"awarded_points"`
	Answer          *string        `json:"answer,omitempty"`
	Feedback        string         `json:"feedback,omitempty"`
	Diagnosis       *diagnosisJSON `json:"diagnosis,omitempty"`
	Score           int            `json:"score"`
}

type diagnosisJSON struct {
	Category      diagnosis.ErrorCategory `json:"category"`
	Misconception problemgen.SlipID       `json:"misconception,omitempty"`
	Message       string                  `json:"message,omitempty"`
}

type hintResponse struct {
	Granted bool   `json:"granted"`
	Hint    string `json:"hint,omitempty"`
	Message string `json:"message"`
	Score   int    `json:"score"`
}

type scoreResponse struct {
	Score             int `json:"score"`
	MissionsCompleted int `json:"missions_completed"`
}

func questionView(q problemgen.Question) questionJSON {
	return questionJSON{
		Kind:   q.Kind,
		Tier:   q.Tier,
		Number: q.Index,
		Text:   q.Text,
		Status: q.Status.String(),
	}
}

func (s *Server) dailyView(d *problemgen.DailyQuestion) questionJSON {
	solved := s.state.DailySolved(d.Date)
	return questionJSON{Kind: problemgen.KindDaily, Date: d.Date, Text: d.Text, Solved: &solved}
}

// pathNumber parses a 1-based path parameter into a 0-based index.
func pathNumber(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		Error(w, http.StatusBadRequest, "bad_request", name+" must be an integer")
		return 0, false
	}
	return n - 1, true
}

func pathTier(w http.ResponseWriter, r *http.Request) (problemgen.Tier, bool) {
	tier, err := problemgen.ParseTier(chi.URLParam(r, "tier"))
	if err != nil {
		Error(w, http.StatusNotFound, "unknown_tier", err.Error())
		return "", false
	}
	return tier, true
}

func pathDate(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := chi.URLParam(r, "date")
	if !problemgen.ValidDate(date) {
		Error(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
		return "", false
	}
	return date, true
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	JSON(w, http.StatusOK, session.Project(s.state))
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	JSON(w, http.StatusOK, scoreResponse{
		Score:             s.state.CurrentScore(),
		MissionsCompleted: s.state.MissionsCompleted(),
	})
}

func (s *Server) handleSelectTier(w http.ResponseWriter, r *http.Request) {
	tier, ok := pathTier(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.state.SelectTier(tier); err != nil {
		sessionError(w, err)
		return
	}
	JSON(w, http.StatusOK, session.Project(s.state).Level)
}

func (s *Server) handleMoveLevel(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !decode(w, r, &req) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MoveLevel(req.Direction)
	JSON(w, http.StatusOK, session.Project(s.state).Level)
}

func (s *Server) handleMoveMission(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !decode(w, r, &req) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MoveMission(req.Direction)
	JSON(w, http.StatusOK, session.Project(s.state).Mission)
}

func (s *Server) handleGetLevel(w http.ResponseWriter, r *http.Request) {
	tier, ok := pathTier(w, r)
	if !ok {
		return
	}
	idx, ok := pathNumber(w, r, "index")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := s.state.TierQuestion(tier, idx)
	if err != nil {
		sessionError(w, err)
		return
	}
	JSON(w, http.StatusOK, questionView(q))
}

func (s *Server) handleGetMission(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathNumber(w, r, "index")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.state.Mission(idx)
	if err != nil {
		sessionError(w, err)
		return
	}
	JSON(w, http.StatusOK, questionView(m))
}

func (s *Server) handleGetDaily(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.state.Daily()
	if d == nil {
		Error(w, http.StatusNotFound, "no_daily", "no daily challenge loaded")
		return
	}
	JSON(w, http.StatusOK, s.dailyView(d))
}

func (s *Server) handleLoadDaily(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.state.LoadDaily(date)
	JSON(w, http.StatusOK, s.dailyView(&d))
}

func (s *Server) handleLevelAnswer(w http.ResponseWriter, r *http.Request) {
	tier, ok := pathTier(w, r)
	if !ok {
		return
	}
	idx, ok := pathNumber(w, r, "index")
	if !ok {
		return
	}
	s.submit(w, r, session.LevelRef(tier, idx))
}

func (s *Server) handleMissionAnswer(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathNumber(w, r, "index")
	if !ok {
		return
	}
	s.submit(w, r, session.MissionRef(idx))
}

func (s *Server) handleDailyAnswer(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	s.submit(w, r, session.DailyRef(date))
}

func (s *Server) handleLevelHint(w http.ResponseWriter, r *http.Request) {
	tier, ok := pathTier(w, r)
	if !ok {
		return
	}
	idx, ok := pathNumber(w, r, "index")
	if !ok {
		return
	}
	s.hint(w, r, session.LevelRef(tier, idx))
}

func (s *Server) handleMissionHint(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathNumber(w, r, "index")
	if !ok {
		return
	}
	s.hint(w, r, session.MissionRef(idx))
}

func (s *Server) handleDailyHint(w http.ResponseWriter, r *http.Request) {
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	s.hint(w, r, session.DailyRef(date))
}

// submit grades a guess. An unparseable guess is not an error: the
// response has accepted=false and nothing changes.
func (s *Server) submit(w http.ResponseWriter, r *http.Request, ref session.Ref) {
	var req guessRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	text, slips, err := s.questionInfo(ref)
	if err != nil {
		s.mu.Unlock()
		sessionError(w, err)
		return
	}
	res, err := s.state.SubmitAnswer(ref, req.Guess)
	s.mu.Unlock()
	if err != nil {
		sessionError(w, err)
		return
	}

	s.recorder.Answer(context.WithoutCancel(r.Context()), ref, text, req.Guess, res)

	out := submitResponse{
		Accepted:        res.Accepted,
		Correct:         res.Correct,
		FirstCompletion: res.FirstCompletion,
		AwardedPoints:   res.AwardedPoints,
		Feedback:        session.Feedback(ref.Kind, res),
		Score:           res.Score,
	}
	if res.Accepted {
		answer := problemgen.FormatAnswer(res.Answer)
		out.Answer = &answer
	}
	if res.Accepted && !res.Correct {
		d := s.diagnoser.Diagnose(&diagnosis.ClassifyInput{Answer: res.Answer, Guess: res.Guess, Slips: slips})
		if d != nil && d.Category != diagnosis.CategoryUnclassified {
			out.Diagnosis = &diagnosisJSON{Category: d.Category, Misconception: d.MisconceptionID, Message: d.Message}
		}
	}
	JSON(w, http.StatusOK, out)
}

func (s *Server) hint(w http.ResponseWriter, r *http.Request, ref session.Ref) {
	s.mu.Lock()
	res, err := s.state.UseHint(ref)
	s.mu.Unlock()
	if err != nil {
		sessionError(w, err)
		return
	}

	s.recorder.Hint(context.WithoutCancel(r.Context()), ref, res)

	JSON(w, http.StatusOK, hintResponse{
		Granted: res.Granted,
		Hint:    res.HintText,
		Message: res.Message,
		Score:   res.Score,
	})
}

// questionInfo returns the text journaled with an answer and the slips used
// to diagnose a miss. Callers hold mu.
func (s *Server) questionInfo(ref session.Ref) (string, []problemgen.Slip, error) {
	switch ref.Kind {
	case problemgen.KindLevel:
		q, err := s.state.TierQuestion(ref.Tier, ref.Index)
		return q.Text, q.Slips, err
	case problemgen.KindMission:
		q, err := s.state.Mission(ref.Index)
		return q.Text, q.Slips, err
	default:
		d := s.state.Daily()
		if d == nil || d.Date != ref.Date {
			fresh := problemgen.NewDailyQuestion(ref.Date)
			d = &fresh
		}
		return d.Text, d.Slips, nil
	}
}
