package classify

// excludedQuestionPhrases are things the AGENT says to collect data, plus
// greetings and logistics chatter. A segment containing any of these is
// never a customer question, whatever else it matches.
var excludedQuestionPhrases = []string{
	// Greetings and small talk
	"how can i help",
	"how may i help",
	"how are you",
	"are you there",
	"can you hear me",
	"hello",
	"hi there",
	"good morning",
	"good afternoon",
	"good evening",
	"thank you for calling",
	"thanks for calling",

	// Personal info collection
	"what is your name",
	"what's your name",
	"can i get your name",
	"may i have your name",
	"who am i speaking",
	"spell your",
	"how do you spell",

	// Phone number collection
	"what is your phone",
	"what's your phone",
	"what is your number",
	"what's your number",
	"what is the best phone",
	"what's the best phone",
	"best number to reach",
	"call you back at",
	"contact number",
	"phone number",

	// Address collection
	"what is your address",
	"what's your address",
	"what is the address",
	"what's the address",
	"where are you located",
	"service address",
	"property address",

	// Email collection
	"what is your email",
	"what's your email",
	"email address",

	// Personal details
	"what is your husband",
	"what's your husband",
	"what is your wife",
	"what's your wife",
	"date of birth",
	"birth date",
	"when were you born",
	"social security",
	"last four",

	// Insurance/billing intake
	"do you have insurance",
	"what insurance",
	"insurance company",
	"insurance card",
	"verify the benefits",
	"insurance information",
	"policy number",
	"member id",
	"group number",

	// Scheduling logistics
	"do you have a pen",
	"do you have something to write",
	"let me get you scheduled",
	"when would you like",
	"what time works",
	"does that work for you",
	"how does that sound",
	"would you prefer",
	"morning or afternoon",
	"does that time work",
	"can you come in",
	"would you be able to come",
	"looking at a time",
	"get you scheduled",

	// Clarification
	"can i get your",
	"can i have your",
	"may i have your",
	"one moment",
	"hold on",
	"please hold",
	"let me check",
	"let me see",
	"what was that",
	"can you repeat",
	"sorry what",
	"excuse me",
	"i didn't catch",
	"did you say",

	// Payment logistics
	"form of payment",
	"credit card",
	"do you want to pay",

	// Verification
	"verify your",
	"confirm your",
	"is that correct",
	"did i get that right",
}

// irrelevantDomainPhrases mark transcript content that has nothing to do
// with the business being analyzed (legal/court/custody matters bleed
// into call transcripts surprisingly often).
var irrelevantDomainPhrases = []string{
	"court", "judge", "attorney", "lawyer", "legal",
	"notified about that", "absent", "missed court",
	"trouble getting in contact", "in trouble or anything",
	"custody", "divorce", "hearing",
	"police", "arrested", "jail",
}

// cannedGreetings identify agent speech even when the speaker label was
// lost in transcription.
var cannedGreetings = []string{
	"thank you for calling",
	"thanks for calling",
	"how can i help",
	"how may i help",
}
