// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Card identifies one test-result presentation unit on the home screen.
type Card string

const (
	UnregisteredCard Card = "unregistered"
	PendingCard      Card = "pending"
	NegativeCard     Card = "negative"
	InvalidCard      Card = "invalid"
	PositiveCard     Card = "positive"
	FailedCard       Card = "failed"
	// ReadyCard announces a positive result the user has not opened yet.
	ReadyCard Card = "ready"
)

func (c Card) String() string {
	return string(c)
}

// NavTarget names a destination screen or action. The UI layer resolves it
// to a concrete page.
type NavTarget string

const (
	NavSubmissionDispatcher          NavTarget = "submission/dispatcher"
	NavTestResultPending             NavTarget = "submission/test-result-pending"
	NavTestResultNegative            NavTarget = "submission/test-result-negative"
	NavTestResultInvalid             NavTarget = "submission/test-result-invalid"
	NavTestResultAvailable           NavTarget = "submission/test-result-available"
	NavPositiveOtherWarningNoConsent NavTarget = "submission/positive-other-warning-no-consent"
	NavWarnOthers                    NavTarget = "submission/warn-others"
	NavHome                          NavTarget = "home"
	NavRemoveTest                    NavTarget = "home/remove-test"
	NavSettingsTracing               NavTarget = "settings/tracing"
	NavRiskDetails                   NavTarget = "risk/details"
	NavSharing                       NavTarget = "main/sharing"
	NavContactDiary                  NavTarget = "contact-diary"
	NavInteropOnboarding             NavTarget = "onboarding/delta-interoperability"
)

func (t NavTarget) String() string {
	return string(t)
}

// Directive tells the UI which card to show and where activating it leads.
// Primary and secondary controls of the card share Target.
type Directive struct {
	Card   Card
	Target NavTarget
}

// SubmissionCardState is the home screen's view of the test registration,
// emitted by the submission view-model every time anything changes.
type SubmissionCardState struct {
	// Registered is true when a registration token is stored on the device.
	Registered bool
	// ResultSeen is true once the user opened a positive result.
	ResultSeen bool
	// DeviceUIState is the latest fetch of the server-side test state.
	DeviceUIState AsyncResult[DeviceState]
}
