package brandbook

// brandTable is the static brand-tier assignment. Keys and aliases are
// matched case-insensitively; Korean aliases cover how the brands appear in
// marketplace titles.
var brandTable = map[string]BrandInfo{
	// Military
	"ALPHA INDUSTRIES": {Canonical: "Alpha Industries", Aliases: []string{"알파인더스트리즈", "알파인더스트리", "ALPHA"}, Tier: TierMilitary, Origin: "USA"},
	"ROTHCO":           {Canonical: "Rothco", Aliases: []string{"로스코"}, Tier: TierMilitary, Origin: "USA"},
	"PROPPER":          {Canonical: "Propper", Aliases: []string{"프로퍼"}, Tier: TierMilitary, Origin: "USA"},
	"BUZZ RICKSON":     {Canonical: "Buzz Rickson's", Aliases: []string{"버즈릭슨"}, Tier: TierMilitary, Origin: "Japan"},

	// Workwear
	"CARHARTT":  {Canonical: "Carhartt", Aliases: []string{"칼하트", "CARHARTT WIP"}, Tier: TierWorkwear, Origin: "USA"},
	"DICKIES":   {Canonical: "Dickies", Aliases: []string{"디키즈"}, Tier: TierWorkwear, Origin: "USA"},
	"RED KAP":   {Canonical: "Red Kap", Aliases: []string{"레드캡", "REDKAP"}, Tier: TierWorkwear, Origin: "USA"},
	"BEN DAVIS": {Canonical: "Ben Davis", Aliases: []string{"벤데이비스", "BENDAVIS"}, Tier: TierWorkwear, Origin: "USA"},
	"FILSON":    {Canonical: "Filson", Aliases: []string{"필슨"}, Tier: TierWorkwear, Origin: "USA"},
	"STAN RAY":  {Canonical: "Stan Ray", Aliases: []string{"스탠레이"}, Tier: TierWorkwear, Origin: "USA"},

	// British
	"BARBOUR":           {Canonical: "Barbour", Aliases: []string{"바버"}, Tier: TierBritish, Origin: "UK"},
	"BURBERRY":          {Canonical: "Burberry", Aliases: []string{"버버리", "BURBERRYS"}, Tier: TierBritish, Origin: "UK"},
	"AQUASCUTUM":        {Canonical: "Aquascutum", Aliases: []string{"아쿠아스큐텀"}, Tier: TierBritish, Origin: "UK"},
	"MACKINTOSH":        {Canonical: "Mackintosh", Aliases: []string{"매킨토시", "맥킨토시"}, Tier: TierBritish, Origin: "UK"},
	"FRED PERRY":        {Canonical: "Fred Perry", Aliases: []string{"프레드페리"}, Tier: TierBritish, Origin: "UK"},
	"BARACUTA":          {Canonical: "Baracuta", Aliases: []string{"바라쿠타"}, Tier: TierBritish, Origin: "UK"},
	"GLOVERALL":         {Canonical: "Gloverall", Aliases: []string{"글로버올"}, Tier: TierBritish, Origin: "UK"},
	"PAUL SMITH":        {Canonical: "Paul Smith", Aliases: []string{"폴스미스"}, Tier: TierBritish, Origin: "UK"},
	"VIVIENNE WESTWOOD": {Canonical: "Vivienne Westwood", Aliases: []string{"비비안웨스트우드"}, Tier: TierBritish, Origin: "UK"},
	"MARGARET HOWELL":   {Canonical: "Margaret Howell", Aliases: []string{"마가렛호웰", "MHL"}, Tier: TierBritish, Origin: "UK"},
	"NIGEL CABOURN":     {Canonical: "Nigel Cabourn", Aliases: []string{"나이젤케이본"}, Tier: TierBritish, Origin: "UK"},
	"TED BAKER":         {Canonical: "Ted Baker", Aliases: []string{"테드베이커"}, Tier: TierBritish, Origin: "UK"},
	"DUNHILL":           {Canonical: "Dunhill", Aliases: []string{"던힐"}, Tier: TierBritish, Origin: "UK"},
	"DR. MARTENS":       {Canonical: "Dr. Martens", Aliases: []string{"닥터마틴", "DR MARTENS"}, Tier: TierBritish, Origin: "UK"},
	"CLARKS":            {Canonical: "Clarks", Aliases: []string{"클락스"}, Tier: TierBritish, Origin: "UK"},

	// Japan
	"COMME DES GARCONS":   {Canonical: "Comme des Garcons", Aliases: []string{"꼼데가르송", "CDG"}, Tier: TierJapan, Origin: "Japan"},
	"ISSEY MIYAKE":        {Canonical: "Issey Miyake", Aliases: []string{"이세이미야케", "PLEATS PLEASE"}, Tier: TierJapan, Origin: "Japan"},
	"YOHJI YAMAMOTO":      {Canonical: "Yohji Yamamoto", Aliases: []string{"요지야마모토", "Y'S"}, Tier: TierJapan, Origin: "Japan"},
	"VISVIM":              {Canonical: "Visvim", Aliases: []string{"비스빔"}, Tier: TierJapan, Origin: "Japan"},
	"KAPITAL":             {Canonical: "Kapital", Aliases: []string{"캐피탈"}, Tier: TierJapan, Origin: "Japan"},
	"NEEDLES":             {Canonical: "Needles", Aliases: []string{"니들스"}, Tier: TierJapan, Origin: "Japan"},
	"NEIGHBORHOOD":        {Canonical: "Neighborhood", Aliases: []string{"네이버후드", "NBHD"}, Tier: TierJapan, Origin: "Japan"},
	"WTAPS":               {Canonical: "WTAPS", Aliases: []string{"더블탭스"}, Tier: TierJapan, Origin: "Japan"},
	"NANAMICA":            {Canonical: "Nanamica", Aliases: []string{"나나미카"}, Tier: TierJapan, Origin: "Japan"},
	"UNDERCOVER":          {Canonical: "Undercover", Aliases: []string{"언더커버"}, Tier: TierJapan, Origin: "Japan"},
	"SACAI":               {Canonical: "Sacai", Aliases: []string{"사카이"}, Tier: TierJapan, Origin: "Japan"},
	"HUMAN MADE":          {Canonical: "Human Made", Aliases: []string{"휴먼메이드"}, Tier: TierJapan, Origin: "Japan"},
	"WACKO MARIA":         {Canonical: "Wacko Maria", Aliases: []string{"와코마리아"}, Tier: TierJapan, Origin: "Japan"},
	"WHITE MOUNTAINEERING": {Canonical: "White Mountaineering", Aliases: []string{"화이트마운티니어링"}, Tier: TierJapan, Origin: "Japan"},
	"BEAMS":               {Canonical: "Beams", Aliases: []string{"빔즈", "BEAMS PLUS", "BEAMS BOY"}, Tier: TierJapan, Origin: "Japan"},
	"UNITED ARROWS":       {Canonical: "United Arrows", Aliases: []string{"유나이티드아로우즈", "BEAUTY&YOUTH", "GREEN LABEL RELAXING"}, Tier: TierJapan, Origin: "Japan"},
	"JOURNAL STANDARD":    {Canonical: "Journal Standard", Aliases: []string{"저널스탠다드"}, Tier: TierJapan, Origin: "Japan"},
	"URBAN RESEARCH":      {Canonical: "Urban Research", Aliases: []string{"어반리서치"}, Tier: TierJapan, Origin: "Japan"},
	"SHIPS":               {Canonical: "Ships", Aliases: []string{"쉽스"}, Tier: TierJapan, Origin: "Japan"},
	"TOMORROWLAND":        {Canonical: "Tomorrowland", Aliases: []string{"투모로우랜드"}, Tier: TierJapan, Origin: "Japan"},
	"UNIQLO":              {Canonical: "Uniqlo", Aliases: []string{"유니클로", "MUJI LABO"}, Tier: TierJapan, Origin: "Japan"},
	"MUJI":                {Canonical: "Muji", Aliases: []string{"무인양품"}, Tier: TierJapan, Origin: "Japan"},
	"MONT-BELL":           {Canonical: "Mont-bell", Aliases: []string{"몽벨", "MONTBELL"}, Tier: TierJapan, Origin: "Japan"},
	"MIZUNO":              {Canonical: "Mizuno", Aliases: []string{"미즈노"}, Tier: TierJapan, Origin: "Japan"},
	"ASICS":               {Canonical: "Asics", Aliases: []string{"아식스"}, Tier: TierJapan, Origin: "Japan"},
	"DESCENTE":            {Canonical: "Descente", Aliases: []string{"데상트"}, Tier: TierJapan, Origin: "Japan"},

	// Heritage Europe (and the American heritage houses the table files with them)
	"GUCCI":             {Canonical: "Gucci", Aliases: []string{"구찌"}, Tier: TierHeritage, Origin: "Italy"},
	"PRADA":             {Canonical: "Prada", Aliases: []string{"프라다"}, Tier: TierHeritage, Origin: "Italy"},
	"DOLCE&GABBANA":     {Canonical: "Dolce & Gabbana", Aliases: []string{"D&G", "돌체앤가바나"}, Tier: TierHeritage, Origin: "Italy"},
	"LOUIS VUITTON":     {Canonical: "Louis Vuitton", Aliases: []string{"루이비통"}, Tier: TierHeritage, Origin: "France"},
	"HERMES":            {Canonical: "Hermes", Aliases: []string{"에르메스"}, Tier: TierHeritage, Origin: "France"},
	"CELINE":            {Canonical: "Celine", Aliases: []string{"셀린느"}, Tier: TierHeritage, Origin: "France"},
	"DIOR":              {Canonical: "Dior", Aliases: []string{"디올", "CHRISTIAN DIOR"}, Tier: TierHeritage, Origin: "France"},
	"MONCLER":           {Canonical: "Moncler", Aliases: []string{"몽클레르"}, Tier: TierHeritage, Origin: "France"},
	"STONE ISLAND":      {Canonical: "Stone Island", Aliases: []string{"스톤아일랜드"}, Tier: TierHeritage, Origin: "Italy"},
	"MAISON MARGIELA":   {Canonical: "Maison Margiela", Aliases: []string{"마르지엘라", "MM6"}, Tier: TierHeritage, Origin: "France"},
	"A.P.C.":            {Canonical: "A.P.C.", Aliases: []string{"아페쎄", "APC"}, Tier: TierHeritage, Origin: "France"},
	"ACNE STUDIOS":      {Canonical: "Acne Studios", Aliases: []string{"아크네"}, Tier: TierHeritage, Origin: "Sweden"},
	"LEMAIRE":           {Canonical: "Lemaire", Aliases: []string{"르메르"}, Tier: TierHeritage, Origin: "France"},
	"OUR LEGACY":        {Canonical: "Our Legacy", Aliases: []string{"아워레가시"}, Tier: TierHeritage, Origin: "Sweden"},
	"AMI":               {Canonical: "AMI Paris", Aliases: []string{"아미", "AMI PARIS"}, Tier: TierHeritage, Origin: "France"},
	"JIL SANDER":        {Canonical: "Jil Sander", Aliases: []string{"질샌더"}, Tier: TierHeritage, Origin: "Germany"},
	"DRIES VAN NOTEN":   {Canonical: "Dries Van Noten", Aliases: []string{"드리스반노튼"}, Tier: TierHeritage, Origin: "Belgium"},
	"POLO RALPH LAUREN": {Canonical: "Polo Ralph Lauren", Aliases: []string{"폴로 랄프로렌", "폴로", "랄프로렌", "RALPH LAUREN", "RRL"}, Tier: TierHeritage, Origin: "USA"},
	"TOMMY HILFIGER":    {Canonical: "Tommy Hilfiger", Aliases: []string{"타미힐피거"}, Tier: TierHeritage, Origin: "USA"},
	"LACOSTE":           {Canonical: "Lacoste", Aliases: []string{"라코스테"}, Tier: TierHeritage, Origin: "France"},
	"BROOKS BROTHERS":   {Canonical: "Brooks Brothers", Aliases: []string{"브룩스브라더스"}, Tier: TierHeritage, Origin: "USA"},
	"HUGO BOSS":         {Canonical: "Hugo Boss", Aliases: []string{"휴고보스"}, Tier: TierHeritage, Origin: "Germany"},
	"GANT":              {Canonical: "Gant", Aliases: []string{"간트"}, Tier: TierHeritage, Origin: "USA"},
	"J.CREW":            {Canonical: "J.Crew", Aliases: []string{"제이크루"}, Tier: TierHeritage, Origin: "USA"},
	"ENGINEERED GARMENTS": {Canonical: "Engineered Garments", Aliases: []string{"엔지니어드가먼츠"}, Tier: TierHeritage, Origin: "USA"},
	"LEVI'S":            {Canonical: "Levi's", Aliases: []string{"리바이스", "LEVIS"}, Tier: TierHeritage, Origin: "USA"},
	"CHAMPION":          {Canonical: "Champion", Aliases: []string{"챔피온"}, Tier: TierHeritage, Origin: "USA"},
	"STUSSY":            {Canonical: "Stussy", Aliases: []string{"스투시"}, Tier: TierHeritage, Origin: "USA"},
	"NIKE":              {Canonical: "Nike", Aliases: []string{"나이키"}, Tier: TierHeritage, Origin: "USA"},
	"ADIDAS":            {Canonical: "Adidas", Aliases: []string{"아디다스"}, Tier: TierHeritage, Origin: "Germany"},
	"NEW BALANCE":       {Canonical: "New Balance", Aliases: []string{"뉴발란스"}, Tier: TierHeritage, Origin: "USA"},

	// Outdoor houses the original table files under heritage
	"THE NORTH FACE": {Canonical: "The North Face", Aliases: []string{"노스페이스", "TNF"}, Tier: TierHeritage, Origin: "USA"},
	"PATAGONIA":      {Canonical: "Patagonia", Aliases: []string{"파타고니아"}, Tier: TierHeritage, Origin: "USA"},
	"ARC'TERYX":      {Canonical: "Arc'teryx", Aliases: []string{"아크테릭스", "ARCTERYX"}, Tier: TierHeritage, Origin: "Canada"},
	"HELLY HANSEN":   {Canonical: "Helly Hansen", Aliases: []string{"헬리한센"}, Tier: TierHeritage, Origin: "Norway"},
	"PENDLETON":      {Canonical: "Pendleton", Aliases: []string{"펜들턴"}, Tier: TierHeritage, Origin: "USA"},
	"WOOLRICH":       {Canonical: "Woolrich", Aliases: []string{"울리치"}, Tier: TierHeritage, Origin: "USA"},
	"L.L.BEAN":       {Canonical: "L.L.Bean", Aliases: []string{"엘엘빈", "LL BEAN", "LLBEAN"}, Tier: TierHeritage, Origin: "USA"},
	"EDDIE BAUER":    {Canonical: "Eddie Bauer", Aliases: []string{"에디바우어"}, Tier: TierHeritage, Origin: "USA"},
	"MAMMUT":         {Canonical: "Mammut", Aliases: []string{"마무트"}, Tier: TierHeritage, Origin: "Switzerland"},
	"SALOMON":        {Canonical: "Salomon", Aliases: []string{"살로몬"}, Tier: TierHeritage, Origin: "France"},

	// No archival lineage
	"GAP":             {Canonical: "Gap", Aliases: []string{"갭"}, Tier: TierOther, Origin: "USA"},
	"H&M":             {Canonical: "H&M", Aliases: []string{"에이치앤엠"}, Tier: TierOther, Origin: "Sweden"},
	"ZARA":            {Canonical: "Zara", Aliases: []string{"자라"}, Tier: TierOther, Origin: "Spain"},
	"COLUMBIA":        {Canonical: "Columbia", Aliases: []string{"컬럼비아"}, Tier: TierOther, Origin: "USA"},
	"K2":              {Canonical: "K2", Aliases: []string{"케이투"}, Tier: TierOther, Origin: "Korea"},
	"BLACK YAK":       {Canonical: "Black Yak", Aliases: []string{"블랙야크"}, Tier: TierOther, Origin: "Korea"},
	"KOLON SPORT":     {Canonical: "Kolon Sport", Aliases: []string{"코오롱스포츠"}, Tier: TierOther, Origin: "Korea"},
	"BANANA REPUBLIC": {Canonical: "Banana Republic", Aliases: []string{"바나나리퍼블릭"}, Tier: TierOther, Origin: "USA"},
	"FOREVER 21":      {Canonical: "Forever 21", Aliases: []string{"포에버21"}, Tier: TierOther, Origin: "USA"},
	"MANGO":           {Canonical: "Mango", Aliases: []string{"망고"}, Tier: TierOther, Origin: "Spain"},
}
