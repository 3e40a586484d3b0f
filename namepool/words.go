package namepool

// Built-in word lists for DefaultPetnames.
var (
	defaultAdverbs = []string{
		"abruptly", "absently", "actually", "almost", "angrily", "barely",
		"blindly", "boldly", "briefly", "brightly", "calmly", "carefully",
		"certainly", "cheerfully", "closely", "curiously", "dearly", "deeply",
		"eagerly", "easily", "endlessly", "equally", "faintly", "famously",
		"firmly", "freely", "gently", "gladly", "gracefully", "happily",
		"hardly", "honestly", "hugely", "initially", "jointly", "kindly",
		"largely", "lately", "lightly", "loudly", "madly", "merely",
		"mildly", "mostly", "nearly", "neatly", "newly", "nicely",
		"openly", "partly", "politely", "presumably", "quickly", "quietly",
		"rapidly", "rarely", "really", "recently", "roughly", "sadly",
		"safely", "seemingly", "sharply", "shyly", "simply", "slowly",
		"smoothly", "softly", "solely", "strangely", "strongly", "suddenly",
		"surely", "sweetly", "swiftly", "tenderly", "truly", "vastly",
		"warmly", "weirdly", "wildly", "willingly", "wisely", "yearly",
	}

	defaultAdjectives = []string{
		"able", "acoustic", "amber", "ancient", "analog", "azure",
		"bold", "brave", "bright", "broken", "calm", "cosmic",
		"crimson", "crisp", "daring", "dark", "distant", "dusty",
		"eager", "electric", "elegant", "endless", "epic", "faded",
		"fancy", "fearless", "fierce", "frosty", "gentle", "gilded",
		"golden", "hollow", "humble", "hungry", "icy", "jolly",
		"kind", "lively", "lonely", "loud", "lucky", "lunar",
		"mellow", "mighty", "modern", "mystic", "neon", "noble",
		"old", "pale", "proud", "quiet", "quirky", "rapid",
		"restless", "royal", "rusty", "savage", "secret", "serene",
		"silent", "silver", "sleepy", "smooth", "solar", "sonic",
		"static", "stellar", "sunny", "swift", "tender", "tidy",
		"twisted", "urban", "velvet", "vivid", "wandering", "warm",
		"wicked", "wild", "wise", "witty", "young", "zesty",
	}

	defaultNouns = []string{
		"alpaca", "anchor", "badger", "beacon", "bear", "beetle",
		"canary", "canyon", "cobra", "comet", "condor", "coyote",
		"crane", "crow", "dingo", "dolphin", "dragon", "eagle",
		"echo", "ember", "falcon", "ferret", "finch", "flamingo",
		"fox", "gazelle", "gecko", "glacier", "harbor", "hawk",
		"heron", "horizon", "ibis", "iguana", "jackal", "jaguar",
		"kestrel", "koala", "lagoon", "lemur", "lynx", "magpie",
		"meadow", "meteor", "mongoose", "moose", "narwhal", "nebula",
		"ocelot", "orca", "osprey", "otter", "panther", "parrot",
		"pelican", "phoenix", "prairie", "puma", "quasar", "raven",
		"reef", "river", "robin", "salmon", "satellite", "sparrow",
		"squid", "summit", "swan", "tiger", "toucan", "tundra",
		"turtle", "valley", "viper", "volcano", "walrus", "weasel",
		"whale", "wolf", "wombat", "yak", "zebra", "zephyr",
	}
)
