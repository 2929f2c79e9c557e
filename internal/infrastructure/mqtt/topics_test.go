package mqtt

import "testing"

func TestTopics_PanelNamespace(t *testing.T) {
	topics := Topics{}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "screen set",
			got:  topics.PanelScreenSet("panel-kitchen"),
			want: "graylogic/ui/panel-kitchen/screen/set",
		},
		{
			name: "screen state",
			got:  topics.PanelScreenState("panel-kitchen"),
			want: "graylogic/ui/panel-kitchen/screen/state",
		},
		{
			name: "presence",
			got:  topics.PanelPresence("panel-kitchen"),
			want: "graylogic/ui/panel-kitchen/presence",
		},
		{
			name: "notification",
			got:  topics.PanelNotification("panel-hall"),
			want: "graylogic/ui/panel-hall/notification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestTopics_CoreNamespace(t *testing.T) {
	topics := Topics{}

	if got := topics.CoreDeviceState("light-living-main"); got != "graylogic/core/device/light-living-main/state" {
		t.Errorf("CoreDeviceState() = %q", got)
	}
	if got := topics.AllCoreDeviceStates(); got != "graylogic/core/device/+/state" {
		t.Errorf("AllCoreDeviceStates() = %q", got)
	}
	if got := topics.AllCoreAlerts(); got != "graylogic/core/alert/+" {
		t.Errorf("AllCoreAlerts() = %q", got)
	}
	if got := topics.SystemStatus(); got != "graylogic/system/status" {
		t.Errorf("SystemStatus() = %q", got)
	}
}
