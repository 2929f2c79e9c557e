package mqtt

import "fmt"

// Topic prefixes per the Gray Logic MQTT specification.
//
// The panel only touches the UI namespace it owns, the canonical device
// state topics published by Core, and the system status topic.
const (
	// TopicPrefixUI is the base for UI client topics.
	TopicPrefixUI = "graylogic/ui"

	// TopicPrefixCore is the base for Core-published canonical topics.
	TopicPrefixCore = "graylogic/core"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "graylogic/system"
)

// Topics provides builders for the bus topics this panel uses.
// Using these helpers keeps topic naming consistent with Core.
//
//	topics := mqtt.Topics{}
//	nav := topics.PanelScreenSet("panel-kitchen")
//	// Returns: "graylogic/ui/panel-kitchen/screen/set"
type Topics struct{}

// =============================================================================
// Panel UI Topics
// =============================================================================

// PanelScreenSet returns the navigation command topic for a panel.
// Core (or another controller) publishes a screen ID here to switch screens.
//
// Example: graylogic/ui/panel-kitchen/screen/set
func (Topics) PanelScreenSet(panelID string) string {
	return fmt.Sprintf("%s/%s/screen/set", TopicPrefixUI, panelID)
}

// PanelScreenState returns the topic where a panel reports its active screen.
// Published retained so late subscribers see the current screen.
//
// Example: graylogic/ui/panel-kitchen/screen/state
func (Topics) PanelScreenState(panelID string) string {
	return fmt.Sprintf("%s/%s/screen/state", TopicPrefixUI, panelID)
}

// PanelPresence returns the presence topic for a panel.
// Carries online/offline status and heartbeats; also the LWT topic.
//
// Example: graylogic/ui/panel-kitchen/presence
func (Topics) PanelPresence(panelID string) string {
	return fmt.Sprintf("%s/%s/presence", TopicPrefixUI, panelID)
}

// PanelNotification returns the notification topic for a panel.
//
// Example: graylogic/ui/panel-kitchen/notification
func (Topics) PanelNotification(panelID string) string {
	return fmt.Sprintf("%s/%s/notification", TopicPrefixUI, panelID)
}

// =============================================================================
// Core Topics
// =============================================================================

// CoreDeviceState returns the canonical device state topic published by Core.
//
// Example: graylogic/core/device/light-living-main/state
func (Topics) CoreDeviceState(deviceID string) string {
	return fmt.Sprintf("%s/device/%s/state", TopicPrefixCore, deviceID)
}

// AllCoreDeviceStates returns a pattern matching all canonical device states.
//
// Pattern: graylogic/core/device/+/state
func (Topics) AllCoreDeviceStates() string {
	return fmt.Sprintf("%s/device/+/state", TopicPrefixCore)
}

// CoreAlert returns the topic for a system alert.
//
// Example: graylogic/core/alert/alert-dali-offline
func (Topics) CoreAlert(alertID string) string {
	return fmt.Sprintf("%s/alert/%s", TopicPrefixCore, alertID)
}

// AllCoreAlerts returns a pattern matching all alerts.
//
// Pattern: graylogic/core/alert/+
func (Topics) AllCoreAlerts() string {
	return fmt.Sprintf("%s/alert/+", TopicPrefixCore)
}

// =============================================================================
// System Topics
// =============================================================================

// SystemStatus returns the Core status topic.
//
// Example: graylogic/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}
