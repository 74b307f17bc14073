package trigger

import (
	"fmt"
	"log/slog"

	"github.com/lazypower/octavia/internal/pet"
	"github.com/lazypower/octavia/internal/render"
	"github.com/lazypower/octavia/internal/store"
)

// Handler applies invocations to the stored pet.
type Handler struct {
	State   *store.StateFile
	History *store.DB // optional
	Logger  *slog.Logger
}

// Result is the outcome of an Interact call.
type Result struct {
	Input       Input
	Instruction pet.Instruction
	Before      pet.State
	State       pet.State
	// Response is the Markdown reply: the status update on success, the
	// usage help when the title was rejected.
	Response string
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Interact parses the issue title, then loads the pet, decays it, applies
// the instruction and saves it. A rejected title returns the help response
// with an error wrapping pet.ErrRejected; the state file is not touched.
func (h *Handler) Interact(in Input) (Result, error) {
	log := h.logger()

	in, testMode := in.Normalize()
	if testMode {
		log.Warn("no issue title found, running in test mode", "title", in.Title)
	}
	log.Info("issue received", "title", in.Title, "author", in.Author, "issue", in.Issue, "body_len", len(in.Body))

	res := Result{Input: in}
	instr, err := pet.ParseTitle(in.Title)
	if err != nil {
		log.Warn("command rejected", "title", in.Title, "error", err)
		res.Response = render.Help()
		return res, err
	}
	res.Instruction = instr
	log.Info("instruction recognized", "instruction", instr)

	before, err := h.State.GetOrInit()
	if err != nil {
		return res, fmt.Errorf("load state: %w", err)
	}
	res.Before = before
	logStats(log, "state before", before)

	s := pet.ApplyDecay(before)
	logStats(log, "decay applied", s)
	s = pet.ApplyInstruction(s, instr)

	if err := h.State.Save(&s); err != nil {
		return res, fmt.Errorf("save state: %w", err)
	}
	res.State = s
	logStats(log, "state after", s)

	h.record(store.NewInteraction(instr.String(), in.Author, in.Issue, before, s))

	res.Response = render.Response(s, instr, in.Author)
	return res, nil
}

// Decay applies one scheduled decay step to the stored pet.
func (h *Handler) Decay() (before, after pet.State, err error) {
	log := h.logger()

	before, err = h.State.GetOrInit()
	if err != nil {
		return before, after, fmt.Errorf("load state: %w", err)
	}
	logStats(log, "state before", before)

	after = pet.ApplyDecay(before)
	if err := h.State.Save(&after); err != nil {
		return before, after, fmt.Errorf("save state: %w", err)
	}
	logStats(log, "decay applied", after)

	h.record(store.NewInteraction(store.DecayAction, "", "", before, after))
	return before, after, nil
}

// record journals a change. The state file is already saved at this point,
// so a journal failure is logged and otherwise ignored.
func (h *Handler) record(in store.Interaction) {
	if h.History == nil {
		return
	}
	if err := h.History.Record(&in); err != nil {
		h.logger().Warn("record interaction", "error", err)
	}
}

func logStats(log *slog.Logger, msg string, s pet.State) {
	log.Info(msg,
		"health", s.Health,
		"hunger", s.Hunger,
		"mood", s.Mood,
		"tier", s.Tier(),
	)
}
