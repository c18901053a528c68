// Package respond renders the agent's reply for the current funnel phase.
// Render is a pure function of (phase, slots, knowledge); instead of
// mutating session state it declares its side effects on the returned
// Reply and leaves applying them to the orchestrator.
package respond

import (
	"fmt"
	"strings"

	contractx "github.com/semsarlabs/semsar/agent/contract"
	"github.com/semsarlabs/semsar/agent/rules"
	statex "github.com/semsarlabs/semsar/agent/state"
)

// Reply is one rendered utterance plus the state changes the suggestion
// phase asks for. Selected and LastMentioned are nil for every other
// phase.
type Reply struct {
	Text          string
	Selected      []statex.Property
	LastMentioned *statex.Property
}

// Render produces the utterance for the given phase. Unknown phases fall
// back to a fixed greeting.
func Render(phase statex.Phase, slots *statex.Slots, know contractx.Knowledge, engine *rules.Engine) Reply {
	switch phase {
	case statex.PhaseDiscovery:
		return Reply{Text: discovery(slots, know)}
	case statex.PhaseSummary:
		return Reply{Text: summary(slots, engine)}
	case statex.PhaseSuggestion:
		return suggestion(slots, know, engine)
	case statex.PhasePersuasion:
		return Reply{Text: persuasion(slots)}
	case statex.PhaseAlternative:
		return Reply{Text: "ممكن نعرض عليك اختيارات تانية قريبة من اللي بتحبّه."}
	case statex.PhaseUrgency:
		return Reply{Text: "الفرص دي مش بتستنى! تحب نكمل إجراءات المعاينة؟"}
	case statex.PhaseClosing:
		return Reply{Text: "تمام، ابعتلي اسمك ورقم تليفونك وهنكلمك في أقرب وقت."}
	}
	return Reply{Text: "أنا هنا أساعدك. تحب تبدأ بإيه؟"}
}

func discovery(slots *statex.Slots, know contractx.Knowledge) string {
	missing := slots.MissingLabels()
	if len(missing) == 0 {
		return "تمام! كده أنا عرفت اللي محتاجه، نراجع المعلومات؟"
	}

	extra := ""
	if question, ok := know.FirstQuestion(); ok {
		extra = "\nمثلاً: " + question
	}
	return fmt.Sprintf("ممكن تقولي %s؟ علشان أقدر أساعدك بشكل أفضل.%s", strings.Join(missing, "، "), extra)
}

func summary(slots *statex.Slots, engine *rules.Engine) string {
	var lines []string
	if slots.Location != "" {
		lines = append(lines, "📍 الموقع: "+slots.Location)
	}
	if slots.Budget != "" {
		lines = append(lines, "💰 الميزانية: "+slots.Budget)
	}
	if slots.PropertyType != "" {
		lines = append(lines, "🏠 النوع: "+slots.PropertyType)
	}

	text := "دي المعلومات اللي جمعتها:\n" + strings.Join(lines, "\n")
	if advice := engine.Advise(slots, nil); len(advice) > 0 {
		text += "\n\n🧠 نصيحة:\n" + strings.Join(advice, "\n")
	}
	return text + "\nهل الكلام ده مظبوط؟"
}

func suggestion(slots *statex.Slots, know contractx.Knowledge, engine *rules.Engine) Reply {
	matches := know.RelevantProperties
	if len(matches) == 0 {
		return Reply{Text: "معرفتش ألاقي عقارات بالمواصفات دي، تحب نغيّر شوية في الطلب؟"}
	}

	var b strings.Builder
	b.WriteString("🏡 العقارات دي ممكن تعجبك:\n")
	for _, prop := range matches {
		fmt.Fprintf(&b, "- %s في %s بـ %s جنيه\n", prop.Type, prop.Location, prop.Price)
	}

	first := matches[0]
	if advice := engine.Advise(slots, &first); len(advice) > 0 {
		b.WriteString("\n🧠 ملاحظات:\n" + strings.Join(advice, "\n"))
	}
	b.WriteString("\nهل في واحد منهم شد انتباهك؟")

	return Reply{
		Text:          b.String(),
		Selected:      matches,
		LastMentioned: &first,
	}
}

func persuasion(slots *statex.Slots) string {
	referred := slots.RefersTo
	if referred == nil || !referred.Resolved || referred.Property == nil {
		return "ممكن توضح إيه اللي مش عاجبك؟ نقدر نعرض بديل."
	}

	features := strings.TrimSpace(referred.Property.Features)
	if features == "" {
		features = "مميزات رائعة"
	}
	location := strings.TrimSpace(referred.Property.Location)
	if location == "" {
		location = "مكان ممتاز"
	}
	return fmt.Sprintf("ليه مش عاجبك؟ ده فيه %s وموقعه في %s.", features, location)
}
