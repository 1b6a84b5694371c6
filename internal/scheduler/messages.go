package scheduler

import (
	"fmt"

	"secret-santa/internal/domain/notification"
	"secret-santa/internal/domain/participant"
)

// Notification texts for every timer branch. The phrase produced by
// timePhrase is spliced into the everyday reminders.
const (
	titleChooseReminder = "Are you in?"
	msgChooseReminder   = "You still haven't decided whether you join the exchange. %s"

	titleGiftInfoNotViewed = "Your recipient is waiting"
	msgGiftInfoNotViewed   = "You haven't looked at your recipient's wishes yet. %s"

	titleGiftInfoViewedNegative = "Time to get moving"
	msgGiftInfoViewedNegative   = "Your own Santa is already done, but your gift is still not ready. %s"

	titleGiftInfoViewedPositive = "Things are on track"
	msgGiftInfoViewedPositive   = "Keep going, your recipient is counting on you. %s"

	titleAssignmentDeadlineOneHour = "One hour left"
	msgAssignmentDeadlineOneHour   = "The toss happens in one hour. Last chance to update your wishes."

	titleAssignmentDeadlineFiveMinutes = "Five minutes left"
	msgAssignmentDeadlineFiveMinutes   = "The toss happens in five minutes."

	titleGiftDeadlineOneHour    = "One hour to the exchange"
	msgGiftDeadlineOneHour      = "The exchange starts in one hour. Finish wrapping!"
	msgGiftDeadlineOneHourReady = "The exchange starts in one hour. Your gift is ready, see you there."

	titleGiftDeadlineFiveMinutes    = "Five minutes to the exchange"
	msgGiftDeadlineFiveMinutes      = "The exchange starts in five minutes. Hurry up!"
	msgGiftDeadlineFiveMinutesReady = "The exchange starts in five minutes. See you there."

	titleExchangeStart = "The exchange begins!"
	msgExchangeStart   = "It is time to hand over the gifts. %s"

	phraseUntilTossLeft     = "There are %s left before the toss."
	phraseUntilExchangeLeft = "There are %s left before the exchange."
	phraseTossOneDay        = "The toss is tomorrow."
	phraseExchangeOneDay    = "The exchange is tomorrow."
	phraseTossToday         = "The toss is today."
	phraseExchangeToday     = "The exchange is today."

	wordManyDays = "days"
	wordFewDays  = "short days"
)

// timePhrase renders the remaining-time wording for the current phase:
// a day count with a magnitude-dependent word form above one day, a
// fixed phrase at exactly one day, "today" otherwise.
func timePhrase(assignmentMade bool, days int) string {
	switch {
	case days > 1:
		main := phraseUntilTossLeft
		if assignmentMade {
			main = phraseUntilExchangeLeft
		}
		word := wordFewDays
		if days > 4 {
			word = wordManyDays
		}
		return fmt.Sprintf(main, fmt.Sprintf("%d %s", days, word))
	case days == 1:
		if assignmentMade {
			return phraseExchangeOneDay
		}
		return phraseTossOneDay
	default:
		if assignmentMade {
			return phraseExchangeToday
		}
		return phraseTossToday
	}
}

// dispatchContext carries the per-firing values shared by every
// participant's notification build.
type dispatchContext struct {
	assignmentMade bool
	isLastDay      bool
	phrase         string
	locationText   string
}

// buildNotifications decides which notifications one participant gets
// from one timer firing. Deadline-relative and custom timers address
// involved participants only; the everyday timer branches on phase and
// per-participant progress.
func buildNotifications(
	timer Timer,
	all []*participant.Participant,
	p *participant.Participant,
	dc dispatchContext,
) []notification.Info {
	switch timer.Kind {
	case KindEveryday:
		return buildEverydayNotifications(all, p, dc)

	case KindAssignmentDeadlineOneHour:
		if dc.isLastDay && !dc.assignmentMade {
			return involvedOnly(p, titleAssignmentDeadlineOneHour, msgAssignmentDeadlineOneHour)
		}

	case KindAssignmentDeadlineFiveMinutes:
		if dc.isLastDay && !dc.assignmentMade {
			return involvedOnly(p, titleAssignmentDeadlineFiveMinutes, msgAssignmentDeadlineFiveMinutes)
		}

	case KindGiftDeadlineOneHour:
		if dc.isLastDay && dc.assignmentMade {
			msg := msgGiftDeadlineOneHour
			if p.TargetStatus() == participant.TargetStatusGiftReady {
				msg = msgGiftDeadlineOneHourReady
			}
			return involvedOnly(p, titleGiftDeadlineOneHour, msg)
		}

	case KindGiftDeadlineFiveMinutes:
		if dc.isLastDay && dc.assignmentMade {
			msg := msgGiftDeadlineFiveMinutes
			if p.TargetStatus() == participant.TargetStatusGiftReady {
				msg = msgGiftDeadlineFiveMinutesReady
			}
			return involvedOnly(p, titleGiftDeadlineFiveMinutes, msg)
		}

	case KindExchangeStart:
		if dc.isLastDay && dc.assignmentMade {
			return involvedOnly(p, titleExchangeStart, fmt.Sprintf(msgExchangeStart, dc.locationText))
		}

	case KindCustomInLastDay:
		if dc.isLastDay && dc.assignmentMade && timer.Custom != nil {
			return involvedOnly(p, timer.Custom.Title, timer.Custom.Message)
		}
	}
	return nil
}

func buildEverydayNotifications(
	all []*participant.Participant,
	p *participant.Participant,
	dc dispatchContext,
) []notification.Info {
	if !dc.assignmentMade {
		if p.Status() == participant.StatusExpectedToChoose {
			return []notification.Info{{
				Title:   titleChooseReminder,
				Message: fmt.Sprintf(msgChooseReminder, dc.phrase),
			}}
		}
		return nil
	}

	if p.Status() != participant.StatusInvolved {
		return nil
	}
	switch p.TargetStatus() {
	case participant.TargetStatusGiftInfoNotViewed:
		return []notification.Info{{
			Title:   titleGiftInfoNotViewed,
			Message: fmt.Sprintf(msgGiftInfoNotViewed, dc.phrase),
		}}

	case participant.TargetStatusGiftInfoViewed:
		santa := findSanta(all, p)
		if santa == nil {
			return nil
		}
		if santa.TargetStatus() == participant.TargetStatusGiftReady {
			return []notification.Info{{
				Title:   titleGiftInfoViewedNegative,
				Message: fmt.Sprintf(msgGiftInfoViewedNegative, dc.phrase),
			}}
		}
		return []notification.Info{{
			Title:   titleGiftInfoViewedPositive,
			Message: fmt.Sprintf(msgGiftInfoViewedPositive, dc.phrase),
		}}

	default:
		// GiftReady and Undefined get no everyday nudge.
		return nil
	}
}

func involvedOnly(p *participant.Participant, title, message string) []notification.Info {
	if p.Status() != participant.StatusInvolved {
		return nil
	}
	return []notification.Info{{Title: title, Message: message}}
}

// findSanta locates the participant whose target is p. Linear scan;
// groups are small.
func findSanta(all []*participant.Participant, p *participant.Participant) *participant.Participant {
	for _, candidate := range all {
		if target := candidate.TargetID(); target != nil && *target == p.ID() {
			return candidate
		}
	}
	return nil
}
