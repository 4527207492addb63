package vocabulary

// Industry is the enumerated code a client's vertical resolves to.
type Industry string

const (
	IndustryHVAC            Industry = "hvac"
	IndustryPlumbing        Industry = "plumbing"
	IndustryElectrical      Industry = "electrical"
	IndustryRoofing         Industry = "roofing"
	IndustryLandscaping     Industry = "landscaping"
	IndustryPestControl     Industry = "pest_control"
	IndustryCleaning        Industry = "cleaning"
	IndustryGarageDoor      Industry = "garage_door"
	IndustryApplianceRepair Industry = "appliance_repair"
	IndustryDental          Industry = "dental"
	IndustryMedical         Industry = "medical"
	IndustryChiropractic    Industry = "chiropractic"
	IndustryOptometry       Industry = "optometry"
	IndustryVeterinary      Industry = "veterinary"
	IndustryPhysicalTherapy Industry = "physical_therapy"
	IndustryMentalHealth    Industry = "mental_health"
	IndustryLegal           Industry = "legal"
	IndustryAccounting      Industry = "accounting"
	IndustryRealEstate      Industry = "real_estate"
	IndustryInsurance       Industry = "insurance"
	IndustryFinancial       Industry = "financial"
	IndustryAutomotive      Industry = "automotive"
	IndustryAutoBody        Industry = "auto_body"
	IndustrySalon           Industry = "salon"
	IndustrySpa             Industry = "spa"
	IndustryFitness         Industry = "fitness"
	IndustryRestaurant      Industry = "restaurant"
	IndustryCatering        Industry = "catering"
	IndustryTutoring        Industry = "tutoring"
	IndustryMusicLessons    Industry = "music_lessons"
	IndustryConstruction    Industry = "construction"
	IndustryPainting        Industry = "painting"
	IndustryFlooring        Industry = "flooring"
	IndustryITServices      Industry = "it_services"
	IndustryWebDesign       Industry = "web_design"
)

// industryOrder fixes the scan order for substring resolution and union
// building so results never depend on map iteration order.
var industryOrder = []Industry{
	IndustryHVAC, IndustryPlumbing, IndustryElectrical, IndustryRoofing,
	IndustryLandscaping, IndustryPestControl, IndustryCleaning,
	IndustryGarageDoor, IndustryApplianceRepair,
	IndustryDental, IndustryMedical, IndustryChiropractic,
	IndustryOptometry, IndustryVeterinary, IndustryPhysicalTherapy,
	IndustryMentalHealth,
	IndustryLegal, IndustryAccounting, IndustryRealEstate,
	IndustryInsurance, IndustryFinancial,
	IndustryAutomotive, IndustryAutoBody,
	IndustrySalon, IndustrySpa, IndustryFitness,
	IndustryRestaurant, IndustryCatering,
	IndustryTutoring, IndustryMusicLessons,
	IndustryConstruction, IndustryPainting, IndustryFlooring,
	IndustryITServices, IndustryWebDesign,
}

// industryKeywords maps each industry code to the terms customers use
// when talking about that vertical.
var industryKeywords = map[Industry][]string{
	IndustryHVAC: {
		"air conditioning", "ac", "heating", "furnace", "heat pump",
		"thermostat", "ductwork", "refrigerant", "freon", "compressor",
		"maintenance", "tune-up", "filter", "installation", "repair",
		"replacement", "efficiency", "seer", "humidity", "ventilation",
		"cooling", "not cooling", "not heating", "frozen", "freeze",
	},
	IndustryPlumbing: {
		"leak", "drain", "clog", "clogged", "pipe", "pipes", "water heater",
		"toilet", "faucet", "sewer", "septic", "garbage disposal", "water pressure",
		"backup", "flooding", "burst pipe", "tankless", "repiping", "plumber",
		"sink", "shower", "bathtub", "water line", "gas line", "sump pump",
	},
	IndustryElectrical: {
		"outlet", "circuit", "breaker", "panel", "wiring", "lighting",
		"generator", "surge protector", "electrical fire", "flickering",
		"power outage", "rewiring", "code", "inspection", "ev charger",
		"electrician", "switch", "dimmer", "ceiling fan", "electrical",
	},
	IndustryRoofing: {
		"roof", "roofing", "shingle", "shingles", "leak", "leaking",
		"gutter", "gutters", "flashing", "soffit", "fascia", "skylight",
		"storm damage", "hail damage", "wind damage", "replacement", "repair",
		"inspection", "estimate", "insurance claim", "tile", "metal roof",
	},
	IndustryLandscaping: {
		"lawn", "grass", "mowing", "tree", "trees", "shrub", "shrubs",
		"mulch", "fertilizer", "irrigation", "sprinkler", "landscape",
		"hardscape", "patio", "pavers", "sod", "planting", "trimming",
		"removal", "stump", "hedge", "garden", "drainage",
	},
	IndustryPestControl: {
		"pest", "pests", "bug", "bugs", "insect", "insects", "termite",
		"termites", "ant", "ants", "roach", "roaches", "rodent", "mouse",
		"mice", "rat", "rats", "bed bug", "spider", "wasp", "bee",
		"exterminator", "infestation", "treatment", "spray", "fumigation",
	},
	IndustryCleaning: {
		"clean", "cleaning", "maid", "housekeeping", "deep clean",
		"carpet", "carpet cleaning", "upholstery", "window", "windows",
		"pressure wash", "power wash", "janitorial", "sanitize", "disinfect",
		"move out", "move in", "recurring", "one time", "weekly", "monthly",
	},
	IndustryGarageDoor: {
		"garage", "garage door", "opener", "spring", "springs", "track",
		"remote", "sensor", "stuck", "won't open", "won't close",
		"noisy", "installation", "replacement", "repair", "maintenance",
	},
	IndustryApplianceRepair: {
		"appliance", "refrigerator", "fridge", "washer", "dryer", "dishwasher",
		"oven", "stove", "range", "microwave", "freezer", "ice maker",
		"not working", "broken", "repair", "fix", "service", "warranty",
	},
	IndustryDental: {
		"teeth", "tooth", "crown", "filling", "root canal", "extraction",
		"cleaning", "whitening", "implant", "dentures", "braces", "invisalign",
		"cavity", "cavities", "gum", "gums", "periodontal", "periodontist",
		"oral", "dental", "dentist", "hygienist", "orthodontist",
		"toothache", "tooth pain", "sensitive", "sensitivity", "bleeding gums",
		"bad breath", "halitosis", "swelling", "abscess", "infection",
		"chipped", "cracked", "broken tooth", "missing tooth", "loose tooth",
		"veneer", "veneers", "bonding", "bridge", "dental bridge",
		"deep cleaning", "scaling", "fluoride", "sealant", "x-ray", "xray",
		"sedation", "nitrous", "numbing", "anesthesia", "novocaine",
		"smile", "cosmetic", "teeth whitening", "bleaching",
		"dental insurance", "dental plan", "dental coverage",
		"emergency", "urgent", "pain", "same day",
	},
	IndustryMedical: {
		"appointment", "consultation", "treatment", "diagnosis", "symptoms",
		"insurance", "coverage", "specialist", "referral", "prescription",
		"follow-up", "test", "results", "procedure", "surgery", "recovery",
		"doctor", "physician", "nurse", "clinic", "patient", "health",
		"checkup", "physical", "lab", "blood work", "medication",
	},
	IndustryChiropractic: {
		"back", "back pain", "spine", "spinal", "neck", "neck pain",
		"adjustment", "alignment", "chiropractor", "chiropractic",
		"posture", "sciatica", "disc", "herniated", "pinched nerve",
		"headache", "migraine", "joint", "muscle", "therapy", "x-ray",
	},
	IndustryOptometry: {
		"eye", "eyes", "vision", "glasses", "contacts", "contact lenses",
		"exam", "eye exam", "prescription", "optometrist", "ophthalmologist",
		"frames", "lenses", "bifocal", "progressive", "sunglasses",
		"dry eye", "glaucoma", "cataract", "lasik", "blurry",
	},
	IndustryVeterinary: {
		"pet", "dog", "cat", "puppy", "kitten", "animal", "vet",
		"veterinarian", "vaccine", "vaccination", "shots", "checkup",
		"spay", "neuter", "surgery", "sick", "injury", "emergency",
		"grooming", "boarding", "dental", "teeth cleaning",
	},
	IndustryPhysicalTherapy: {
		"therapy", "physical therapy", "pt", "rehab", "rehabilitation",
		"exercise", "stretching", "strength", "mobility", "flexibility",
		"injury", "recovery", "pain", "sports", "post surgery",
		"knee", "shoulder", "hip", "ankle", "back", "neck",
	},
	IndustryMentalHealth: {
		"therapy", "therapist", "counseling", "counselor", "psychologist",
		"psychiatrist", "mental health", "anxiety", "depression", "stress",
		"appointment", "session", "insurance", "sliding scale", "telehealth",
		"couples", "family", "individual", "group",
	},
	IndustryLegal: {
		"lawyer", "attorney", "legal", "case", "lawsuit", "consultation",
		"settlement", "court", "trial", "deposition", "discovery",
		"representation", "fees", "retainer", "contract", "liability",
		"damages", "defense", "prosecution", "divorce", "custody",
		"personal injury", "criminal", "civil", "estate", "will", "trust",
	},
	IndustryAccounting: {
		"tax", "taxes", "accountant", "cpa", "bookkeeping", "payroll",
		"filing", "return", "refund", "audit", "irs", "deduction",
		"business", "personal", "quarterly", "annual", "financial",
		"statement", "balance sheet", "income", "expense",
	},
	IndustryRealEstate: {
		"listing", "showing", "offer", "closing", "inspection", "appraisal",
		"mortgage", "pre-approval", "commission", "contract", "escrow",
		"contingency", "negotiation", "market", "price", "neighborhood",
		"buy", "sell", "rent", "lease", "property", "home", "house",
		"condo", "townhouse", "realtor", "agent", "broker",
	},
	IndustryInsurance: {
		"policy", "coverage", "premium", "deductible", "claim", "quote",
		"auto", "home", "life", "health", "business", "liability",
		"umbrella", "agent", "broker", "renew", "cancel", "add", "remove",
	},
	IndustryFinancial: {
		"investment", "retirement", "portfolio", "stocks", "bonds", "mutual fund",
		"401k", "ira", "roth", "advisor", "planner", "wealth", "estate",
		"loan", "mortgage", "refinance", "credit", "debt", "savings",
	},
	IndustryAutomotive: {
		"car", "vehicle", "auto", "truck", "suv", "repair", "service",
		"oil change", "brake", "brakes", "tire", "tires", "transmission",
		"engine", "battery", "alignment", "inspection", "diagnostic",
		"check engine", "maintenance", "tune up", "warranty", "recall",
	},
	IndustryAutoBody: {
		"body", "collision", "accident", "dent", "scratch", "paint",
		"bumper", "fender", "frame", "insurance", "claim", "estimate",
		"repair", "restoration", "custom", "detail", "detailing",
	},
	IndustrySalon: {
		"hair", "haircut", "color", "highlight", "balayage", "perm",
		"straightening", "keratin", "stylist", "appointment", "walk-in",
		"blowout", "trim", "style", "updo", "extensions", "treatment",
	},
	IndustrySpa: {
		"massage", "facial", "spa", "relaxation", "treatment", "body",
		"skin", "skincare", "wax", "waxing", "nail", "manicure", "pedicure",
		"appointment", "package", "gift card", "couples", "prenatal",
	},
	IndustryFitness: {
		"gym", "membership", "class", "classes", "trainer", "training",
		"workout", "exercise", "fitness", "weight", "cardio", "strength",
		"yoga", "pilates", "spin", "crossfit", "schedule", "cancel",
	},
	IndustryRestaurant: {
		"reservation", "table", "menu", "order", "delivery", "takeout",
		"catering", "private event", "party", "hours", "location",
		"allergy", "vegetarian", "vegan", "gluten free", "special",
	},
	IndustryCatering: {
		"catering", "event", "wedding", "corporate", "party", "menu",
		"quote", "tasting", "headcount", "dietary", "setup", "delivery",
		"buffet", "plated", "appetizer", "dessert", "beverage",
	},
	IndustryTutoring: {
		"tutor", "tutoring", "lesson", "lessons", "subject", "math",
		"reading", "writing", "science", "test prep", "sat", "act",
		"homework", "grade", "schedule", "online", "in person", "rates",
	},
	IndustryMusicLessons: {
		"lesson", "lessons", "music", "piano", "guitar", "violin", "drums",
		"voice", "singing", "instrument", "teacher", "instructor",
		"beginner", "intermediate", "advanced", "recital", "schedule",
	},
	IndustryConstruction: {
		"build", "building", "construction", "contractor", "remodel",
		"renovation", "addition", "permit", "estimate", "bid", "project",
		"timeline", "materials", "labor", "commercial", "residential",
	},
	IndustryPainting: {
		"paint", "painting", "painter", "interior", "exterior", "color",
		"estimate", "quote", "prep", "primer", "coat", "finish",
		"cabinet", "trim", "ceiling", "wall", "deck", "stain",
	},
	IndustryFlooring: {
		"floor", "flooring", "hardwood", "laminate", "tile", "carpet",
		"vinyl", "installation", "refinish", "repair", "estimate",
		"measurement", "material", "labor", "subfloor", "transition",
	},
	IndustryITServices: {
		"computer", "laptop", "desktop", "server", "network", "wifi",
		"internet", "email", "software", "hardware", "virus", "malware",
		"backup", "recovery", "support", "repair", "upgrade", "install",
	},
	IndustryWebDesign: {
		"website", "web", "design", "development", "hosting", "domain",
		"seo", "mobile", "responsive", "ecommerce", "update", "maintenance",
		"redesign", "quote", "portfolio", "cms", "wordpress",
	},
}

// universalKeywords apply to every industry: pricing, scheduling, service
// actions, quality, process and location terms.
var universalKeywords = []string{
	// Pricing & cost
	"cost", "price", "pricing", "rate", "rates", "fee", "fees",
	"charge", "charges", "estimate", "quote", "afford", "budget",
	"payment", "financing", "deposit", "discount", "special", "deal",

	// Scheduling & time
	"appointment", "schedule", "available", "availability", "book",
	"reschedule", "cancel", "time", "when", "how long", "how soon",
	"wait", "waiting", "urgent", "emergency", "asap", "same day",
	"next day", "weekend", "evening", "morning", "afternoon",

	// Service actions
	"repair", "fix", "replace", "install", "service", "maintain",
	"maintenance", "inspect", "inspection", "diagnose", "assess",

	// Quality & warranty
	"warranty", "guarantee", "insured", "licensed", "certified",
	"experience", "years", "reviews", "rating", "recommend",

	// Process & procedure
	"how do", "how does", "what happens", "process", "steps",
	"what should", "what do", "need to", "have to", "required",

	// Location & coverage
	"area", "location", "travel", "service area", "come to", "on site",
}
