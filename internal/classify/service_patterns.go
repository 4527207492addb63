package classify

import (
	"regexp"

	"github.com/fieldscout/interactionintel/internal/vocabulary"
)

// servicePatterns map an industry to action+object regexes describing
// concrete services customers ask for. Capture groups are joined and
// title-cased into the display label.
var servicePatterns = map[vocabulary.Industry][]*regexp.Regexp{
	vocabulary.IndustryDental: {
		regexp.MustCompile(`\b(teeth?\s*cleaning|dental\s*cleaning|prophylaxis)`),
		regexp.MustCompile(`\b(teeth?\s*whitening|bleaching|zoom\s*whitening)`),
		regexp.MustCompile(`\b(root\s*canal|endodontic)`),
		regexp.MustCompile(`\b(crown|dental\s*crown)`),
		regexp.MustCompile(`\b(filling|cavity\s*filling|composite)`),
		regexp.MustCompile(`\b(extraction|tooth\s*extraction)`),
		regexp.MustCompile(`\b(implant|dental\s*implant)`),
		regexp.MustCompile(`\b(veneers?|dental\s*veneers?)`),
		regexp.MustCompile(`\b(dentures?|partial\s*dentures?|full\s*dentures?)`),
		regexp.MustCompile(`\b(braces|invisalign|orthodontic)`),
		regexp.MustCompile(`\b(deep\s*cleaning|scaling|root\s*planing)`),
		regexp.MustCompile(`\b(emergency\s*dental|dental\s*emergency|tooth\s*pain)`),
		regexp.MustCompile(`\b(gum\s*treatment|periodontal|gum\s*disease)`),
		regexp.MustCompile(`\b(night\s*guard|mouth\s*guard|bite\s*guard)`),
		regexp.MustCompile(`\b(sedation\s*dentistry|sleep\s*dentistry)`),
	},
	vocabulary.IndustryHVAC: {
		regexp.MustCompile(`\b(ac|air conditioner|air conditioning)\s*(repair|service|installation|replacement|maintenance|tune.?up)`),
		regexp.MustCompile(`\b(heating|furnace|heat pump)\s*(repair|service|installation|replacement|maintenance)`),
		regexp.MustCompile(`\b(thermostat)\s*(repair|replacement|installation|programming)`),
		regexp.MustCompile(`\b(duct|ductwork)\s*(cleaning|repair|installation)`),
		regexp.MustCompile(`\b(freon|refrigerant)\s*(recharge|leak|check)`),
		regexp.MustCompile(`\bnew\s+(ac|air conditioner|unit|system|furnace)`),
	},
	vocabulary.IndustryPlumbing: {
		regexp.MustCompile(`\b(drain)\s*(cleaning|unclog|repair)`),
		regexp.MustCompile(`\b(pipe)\s*(repair|replacement|leak)`),
		regexp.MustCompile(`\b(water heater)\s*(repair|replacement|installation)`),
		regexp.MustCompile(`\b(toilet)\s*(repair|replacement|installation|unclog)`),
		regexp.MustCompile(`\b(faucet)\s*(repair|replacement|installation)`),
		regexp.MustCompile(`\b(garbage disposal)\s*(repair|replacement|installation)`),
		regexp.MustCompile(`\b(sewer)\s*(line|cleaning|repair)`),
		regexp.MustCompile(`\b(leak)\s*(detection|repair)`),
		regexp.MustCompile(`\b(emergency)\s*(plumbing|plumber)`),
	},
	vocabulary.IndustryElectrical: {
		regexp.MustCompile(`\b(electrical)\s*(repair|service|installation|inspection)`),
		regexp.MustCompile(`\b(outlet)\s*(repair|replacement|installation)`),
		regexp.MustCompile(`\b(panel)\s*(upgrade|repair|replacement)`),
		regexp.MustCompile(`\b(wiring)\s*(repair|replacement|installation)`),
		regexp.MustCompile(`\b(lighting)\s*(installation|repair)`),
		regexp.MustCompile(`\b(generator)\s*(installation|repair|service)`),
		regexp.MustCompile(`\b(ev charger)\s*(installation)`),
		regexp.MustCompile(`\b(circuit breaker)\s*(repair|replacement)`),
	},
	vocabulary.IndustryRoofing: {
		regexp.MustCompile(`\b(roof)\s*(repair|replacement|inspection|installation)`),
		regexp.MustCompile(`\b(shingle)\s*(repair|replacement)`),
		regexp.MustCompile(`\b(gutter)\s*(cleaning|repair|installation)`),
		regexp.MustCompile(`\b(leak)\s*(repair|detection)`),
		regexp.MustCompile(`\b(storm damage)\s*(repair)`),
		regexp.MustCompile(`\b(roof)\s*(estimate|inspection)`),
	},
	vocabulary.IndustryLegal: {
		regexp.MustCompile(`\b(legal)\s*(consultation|advice|representation)`),
		regexp.MustCompile(`\b(case)\s*(review|evaluation)`),
		regexp.MustCompile(`\b(personal injury)\s*(case|claim)`),
		regexp.MustCompile(`\b(divorce)\s*(consultation|filing)`),
		regexp.MustCompile(`\b(estate)\s*(planning|will|trust)`),
		regexp.MustCompile(`\b(contract)\s*(review|drafting)`),
		regexp.MustCompile(`\b(criminal)\s*(defense)`),
	},
	vocabulary.IndustryAutomotive: {
		regexp.MustCompile(`\b(oil)\s*(change)`),
		regexp.MustCompile(`\b(brake)\s*(repair|replacement|service)`),
		regexp.MustCompile(`\b(tire)\s*(rotation|replacement|repair)`),
		regexp.MustCompile(`\b(transmission)\s*(repair|service)`),
		regexp.MustCompile(`\b(engine)\s*(repair|diagnostic)`),
		regexp.MustCompile(`\b(check engine)\s*(light|diagnostic)`),
		regexp.MustCompile(`\b(ac)\s*(repair|recharge)`),
		regexp.MustCompile(`\b(alignment)`),
	},
	vocabulary.IndustrySalon: {
		regexp.MustCompile(`\b(haircut|hair\s*cut)`),
		regexp.MustCompile(`\b(hair)\s*(color|coloring|dye)`),
		regexp.MustCompile(`\b(highlights?|balayage)`),
		regexp.MustCompile(`\b(blowout|blow\s*dry)`),
		regexp.MustCompile(`\b(perm|straightening|keratin)`),
		regexp.MustCompile(`\b(extensions)`),
	},
	vocabulary.IndustrySpa: {
		regexp.MustCompile(`\b(massage)\s*(therapy|treatment)?`),
		regexp.MustCompile(`\b(facial)\s*(treatment)?`),
		regexp.MustCompile(`\b(manicure|pedicure)`),
		regexp.MustCompile(`\b(wax|waxing)`),
		regexp.MustCompile(`\b(body)\s*(treatment|wrap)`),
	},
	vocabulary.IndustryRealEstate: {
		regexp.MustCompile(`\b(home)\s*(buying|selling|valuation)`),
		regexp.MustCompile(`\b(listing)\s*(consultation)?`),
		regexp.MustCompile(`\b(market)\s*(analysis)`),
		regexp.MustCompile(`\b(property)\s*(search|showing)`),
	},
	vocabulary.IndustryCleaning: {
		regexp.MustCompile(`\b(house|home)\s*(cleaning)`),
		regexp.MustCompile(`\b(deep)\s*(clean|cleaning)`),
		regexp.MustCompile(`\b(carpet)\s*(cleaning)`),
		regexp.MustCompile(`\b(window)\s*(cleaning)`),
		regexp.MustCompile(`\b(move.?in|move.?out)\s*(cleaning)?`),
	},
	vocabulary.IndustryVeterinary: {
		regexp.MustCompile(`\b(pet|dog|cat)\s*(checkup|exam|vaccination|surgery)`),
		regexp.MustCompile(`\b(spay|neuter)`),
		regexp.MustCompile(`\b(dental)\s*(cleaning)`),
		regexp.MustCompile(`\b(emergency)\s*(vet|animal)`),
	},
	vocabulary.IndustryFitness: {
		regexp.MustCompile(`\b(gym)\s*(membership)`),
		regexp.MustCompile(`\b(personal)\s*(training|trainer)`),
		regexp.MustCompile(`\b(fitness)\s*(class|assessment)`),
		regexp.MustCompile(`\b(yoga|pilates|crossfit)\s*(class)?`),
	},
}

// genericServicePattern catches "need my X repaired" style requests the
// industry catalogs miss.
var genericServicePattern = regexp.MustCompile(
	`(?:need|want|looking for|interested in)\s+(?:a|an|to)?\s*(?:get\s+)?(?:my|the|our)?\s*(\w+(?:\s+\w+)?)\s*(?:repaired|fixed|replaced|installed|serviced)`)
