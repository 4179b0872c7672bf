package masterdata

// ProductAdjectives and ProductNouns combine into product names.
var ProductAdjectives = []string{
	"Advanced", "Classic", "Compact", "Deluxe", "Durable", "Elegant",
	"Ergonomic", "Essential", "Fantastic", "Generic", "Gorgeous", "Handcrafted",
	"Heavy Duty", "Incredible", "Intelligent", "Lightweight", "Modern", "Practical",
	"Premium", "Refined", "Rustic", "Sleek", "Smart", "Sturdy", "Tasty",
	"Ultra", "Unbranded", "Vintage",
}

// ProductMaterials are optional qualifiers between adjective and noun.
var ProductMaterials = []string{
	"Aluminum", "Bamboo", "Ceramic", "Concrete", "Copper", "Cotton", "Fresh",
	"Frozen", "Granite", "Leather", "Linen", "Marble", "Plastic", "Rubber",
	"Silk", "Soft", "Steel", "Wooden", "Wool",
}

// ProductNouns are the item part of product names.
var ProductNouns = []string{
	"Bag", "Ball", "Bike", "Blender", "Boots", "Bottle", "Bread", "Chair",
	"Cheese", "Chips", "Clock", "Coat", "Computer", "Desk", "Drill", "Fan",
	"Gloves", "Hat", "Headphones", "Jacket", "Keyboard", "Lamp", "Monitor",
	"Mouse", "Pants", "Pizza", "Sausages", "Shirt", "Shoes", "Sofa", "Speaker",
	"Table", "Tires", "Towels", "Wallet", "Watch",
}

// Cities is a curated list of city names for network locations.
var Cities = []string{
	"Akron", "Albany", "Allentown", "Amarillo", "Anaheim", "Arlington", "Atlanta",
	"Augusta", "Aurora", "Austin", "Bakersfield", "Baltimore", "Boise", "Boston",
	"Buffalo", "Chandler", "Charlotte", "Chattanooga", "Chesapeake", "Chicago",
	"Cleveland", "Columbus", "Dallas", "Dayton", "Denver", "Des Moines", "Detroit",
	"Durham", "El Paso", "Eugene", "Fargo", "Fort Wayne", "Fresno", "Glendale",
	"Greensboro", "Hartford", "Henderson", "Houston", "Irvine", "Jacksonville",
	"Knoxville", "Lakeland", "Laredo", "Lexington", "Lincoln", "Louisville",
	"Madison", "Memphis", "Mesa", "Milwaukee", "Modesto", "Nashville", "Newark",
	"Norfolk", "Oakland", "Omaha", "Orlando", "Peoria", "Phoenix", "Pittsburgh",
	"Plano", "Portland", "Providence", "Raleigh", "Reno", "Richmond", "Rochester",
	"Sacramento", "Salem", "Savannah", "Scottsdale", "Spokane", "Stockton",
	"Syracuse", "Tacoma", "Tampa", "Toledo", "Tucson", "Tulsa", "Wichita",
}

// Surnames seed company names.
var Surnames = []string{
	"Adams", "Anderson", "Baker", "Barnes", "Bell", "Bennett", "Brooks",
	"Brown", "Butler", "Campbell", "Carter", "Chen", "Clark", "Collins",
	"Cooper", "Cruz", "Davis", "Diaz", "Edwards", "Evans", "Fisher",
	"Flores", "Foster", "Garcia", "Gonzalez", "Gray", "Green", "Hall",
	"Harris", "Hayes", "Henderson", "Hernandez", "Hill", "Howard", "Hughes",
	"Jackson", "James", "Jenkins", "Johnson", "Jones", "Kelly", "Kim",
	"King", "Lee", "Lewis", "Long", "Lopez", "Martin", "Martinez",
	"Miller", "Mitchell", "Moore", "Morgan", "Morris", "Murphy", "Nelson",
	"Nguyen", "Parker", "Patterson", "Perez", "Perry", "Peterson", "Phillips",
	"Powell", "Price", "Ramirez", "Reed", "Reyes", "Richardson", "Rivera",
	"Roberts", "Robinson", "Rodriguez", "Rogers", "Ross", "Russell", "Sanchez",
	"Sanders", "Scott", "Simmons", "Smith", "Stewart", "Sullivan", "Taylor",
	"Thomas", "Thompson", "Torres", "Turner", "Walker", "Ward", "Washington",
	"Watson", "White", "Williams", "Wilson", "Wood", "Wright", "Young",
}

// CompanySuffixes complete company names.
var CompanySuffixes = []string{"Inc", "LLC", "Group", "Ltd", "PLC", "and Sons", "Holdings", "Partners"}

// CompanyFormat selects how a company name is assembled.
type CompanyFormat int

const (
	// "Surname Suffix"
	CompanySingle CompanyFormat = iota
	// "Surname-Surname"
	CompanyHyphenated
	// "Surname, Surname and Surname"
	CompanyTriple
)

// CompanyFormats lists the formats in sampling order.
var CompanyFormats = []CompanyFormat{CompanySingle, CompanyHyphenated, CompanyTriple}
