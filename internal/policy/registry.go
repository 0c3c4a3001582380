package policy

// criticalNames are system processes that must never be killed.
var criticalNames = []string{
	"kernel_task", "launchd", "WindowServer", "loginwindow",
	"opendirectoryd", "coreduetd", "configd", "distnoted",
	"logd", "UserEventAgent", "syslogd", "notifyd",
	"mds", "mds_stores", "diskarbitrationd", "securityd",
	"trustd", "bluetoothd", "airportd", "powerd",
	"hidd", "coreaudiod", "audiod", "CommCenter",
	"symptomsd", "CloudKeychainProxy", "secd",
}

// cautionNames are Apple user-space services.
var cautionNames = []string{
	"Finder", "Dock", "SystemUIServer", "Spotlight",
	"NotificationCenter", "ControlCenter", "WiFiAgent",
	"AirPlayUIAgent", "Siri", "SiriNCService",
	"universalaccessd", "talagent", "pboard",
	"sharingd", "rapportd", "AMPDeviceDiscoveryAgent",
	"bird", "cloudd", "nsurlsessiond", "lsd",
	"iconservicesagent", "containermanagerd",
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		CriticalNames: toSet(criticalNames),
		CautionNames:  toSet(cautionNames),
		CriticalPaths: []string{
			"/System/",
			"/usr/libexec/",
			"/usr/sbin/",
		},
		CautionPaths: []string{
			"/System/Library/CoreServices/",
			"/System/Library/PrivateFrameworks/",
		},
		SafePaths: []string{
			"/Applications/",
			"/usr/local/",    // Homebrew (Intel)
			"/opt/homebrew/", // Homebrew (Apple Silicon)
			"/Users/",
		},
	}
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
